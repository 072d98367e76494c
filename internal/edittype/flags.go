package edittype

import "github.com/specialistvlad/figcore/internal/schema"

// None is the edit flag that sets nothing.
const None = "none"

// TraceVocabulary lists the phases a trace mutation can trigger.
var TraceVocabulary = []string{
	"calc", "clearAxisTypes", "plot", "style", "markerSize",
	"colorbars", "legend", "fullReplot",
}

// LayoutVocabulary lists the phases a layout mutation can trigger.
var LayoutVocabulary = []string{
	"calc", "plot", "legend", "ticks", "axrange", "layoutstyle",
	"modebar", "camera", "arraydraw", "colorbars",
}

// Target is a flag set that Accumulate can write into. It is implemented
// by *TraceFlags and *LayoutFlags only.
type Target interface {
	Has(flag string) bool
	Names() []string
	set(flag string)
}

type flagSet struct {
	vocab []string
	on    map[string]bool
}

func newFlagSet(vocab []string) flagSet {
	return flagSet{vocab: vocab, on: make(map[string]bool, len(vocab))}
}

func (f *flagSet) set(flag string) {
	if flag == None || !inVocabulary(f.vocab, flag) {
		return
	}
	f.on[flag] = true
}

// Has reports whether flag is set.
func (f *flagSet) Has(flag string) bool { return f.on[flag] }

// Empty reports whether no flag is set.
func (f *flagSet) Empty() bool { return len(f.on) == 0 }

// Names returns the set flags in vocabulary order.
func (f *flagSet) Names() []string {
	var out []string
	for _, name := range f.vocab {
		if f.on[name] {
			out = append(out, name)
		}
	}
	return out
}

// Map returns every flag of the vocabulary with its state.
func (f *flagSet) Map() map[string]bool {
	out := make(map[string]bool, len(f.vocab))
	for _, name := range f.vocab {
		out[name] = f.on[name]
	}
	return out
}

func (f *flagSet) union(other *flagSet) {
	for name := range other.on {
		f.on[name] = true
	}
}

// TraceFlags is the flag set produced by trace (restyle) mutations.
type TraceFlags struct{ flagSet }

// LayoutFlags is the flag set produced by layout (relayout) mutations.
type LayoutFlags struct{ flagSet }

// NewTraceFlags returns an all-false trace flag set.
func NewTraceFlags() *TraceFlags {
	return &TraceFlags{newFlagSet(TraceVocabulary)}
}

// NewLayoutFlags returns an all-false layout flag set.
func NewLayoutFlags() *LayoutFlags {
	return &LayoutFlags{newFlagSet(LayoutVocabulary)}
}

// Union returns a new set holding the flags of both.
func (f *TraceFlags) Union(other *TraceFlags) *TraceFlags {
	out := NewTraceFlags()
	out.union(&f.flagSet)
	out.union(&other.flagSet)
	return out
}

// Union returns a new set holding the flags of both.
func (f *LayoutFlags) Union(other *LayoutFlags) *LayoutFlags {
	out := NewLayoutFlags()
	out.union(&f.flagSet)
	out.union(&other.flagSet)
	return out
}

// IsTraceFlag reports whether flag belongs to the trace vocabulary.
func IsTraceFlag(flag string) bool { return flag == None || inVocabulary(TraceVocabulary, flag) }

// IsLayoutFlag reports whether flag belongs to the layout vocabulary.
func IsLayoutFlag(flag string) bool { return flag == None || inVocabulary(LayoutVocabulary, flag) }

// StyleOnly reports whether a change with this edit type can be captured in
// a template: it does not touch data, axis types or ranges, the camera or
// the whole plot, and it is not an inert "none".
func StyleOnly(e schema.EditType) bool {
	flags := e.Flags()
	if len(flags) == 0 {
		return false
	}
	meaningful := false
	for _, f := range flags {
		switch f {
		case "calc", "clearAxisTypes", "axrange", "camera", "fullReplot":
			return false
		case None:
		default:
			meaningful = true
		}
	}
	return meaningful
}

func inVocabulary(vocab []string, flag string) bool {
	for _, v := range vocab {
		if v == flag {
			return true
		}
	}
	return false
}
