// Package edittype turns changed attribute paths into the set of
// recomputation phases a render pipeline must re-run.
//
// Trace mutations and layout mutations use distinct vocabularies and
// distinct Go types (TraceFlags, LayoutFlags), so the two can never be
// merged by accident. Flags only go from false to true: accumulation is
// order independent and idempotent.
package edittype
