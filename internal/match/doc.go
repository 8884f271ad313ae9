// Package match finds the known name closest to an unknown one.
//
// Names are compared after normalization (case folding, separators removed)
// using a rune-based Levenshtein similarity. The resolver uses it to suggest
// a recognizer when an export names a prebuilt it does not know.
package match
