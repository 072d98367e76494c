package schema

// ValType is the kind of value a Leaf holds.
type ValType string

const (
	Boolean    ValType = "boolean"
	Number     ValType = "number"
	Integer    ValType = "integer"
	String     ValType = "string"
	Enumerated ValType = "enumerated"
	Color      ValType = "color"
	FlagList   ValType = "flaglist"
	SubplotID  ValType = "subplotid"
	DataArray  ValType = "data_array"
	InfoArray  ValType = "info_array"
	Any        ValType = "any"
)

// KnownValTypes lists every supported ValType.
var KnownValTypes = []ValType{
	Boolean, Number, Integer, String, Enumerated, Color,
	FlagList, SubplotID, DataArray, InfoArray, Any,
}

// IsKnown reports whether v is a supported ValType.
func (v ValType) IsKnown() bool {
	for _, k := range KnownValTypes {
		if k == v {
			return true
		}
	}
	return false
}
