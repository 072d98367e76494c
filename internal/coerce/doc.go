// Package coerce validates and normalizes single attribute values against
// their schema leaf and writes them into a resolved output tree.
//
// A value is taken from the first valid source in this order: the user
// input, the active template, the caller-supplied fallback, the leaf's
// static default. When none applies the attribute is omitted. The input
// tree is only ever read; everything written to the output is a fresh copy.
//
// Asking for an attribute the schema does not define is a programmer error.
// A Coercer remembers the first such error (see Err) and keeps going, so a
// defaults routine can coerce a whole component and check once at the end.
package coerce
