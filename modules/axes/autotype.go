package axes

import (
	"regexp"

	"github.com/specialistvlad/figcore/internal/coerce"
)

var dateValue = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([ T]\d{2}:\d{2}(:\d{2}(\.\d+)?)?)?$`)

// autotype detects an axis type from the coordinates the traces put on it.
// Mostly dates make a date axis; an axis is categorical when non-numeric
// values outnumber numbers more than two to one. Anything else is linear,
// including axes whose traces have no coordinates for this letter.
func autotype(traces []map[string]any, letter string) string {
	var numbers, dates, others int
	for _, trace := range traces {
		values, _ := trace[letter].([]any)
		for _, v := range values {
			switch {
			case v == nil:
			case isNumber(v):
				numbers++
			case isDate(v):
				dates++
			default:
				others++
			}
		}
	}
	switch {
	case dates > numbers && dates > others:
		return "date"
	case others > 2*numbers:
		return "category"
	}
	return "linear"
}

func isNumber(v any) bool {
	_, ok := coerce.ToNumber(v)
	return ok
}

func isDate(v any) bool {
	s, ok := v.(string)
	return ok && dateValue.MatchString(s)
}
