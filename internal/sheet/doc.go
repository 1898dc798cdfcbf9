// Package sheet implements the calculation builder: a symbol registry and
// an append-only step ledger populated by declarations, evaluated once in
// insertion order, and rendered into typeset or terminal reports. It also
// compiles registered equations into reusable functions over columnar
// input.
//
// A builder instance owns its registry, ledger and evaluation context
// exclusively; callers must serialize access to a given instance.
package sheet
