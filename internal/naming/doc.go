// Package naming maps arbitrary LUIS names to identifiers that are valid in
// every generated language.
//
// Identifier is the pure transformation. Scope adds collision tracking for
// one declaration scope: the first name to claim an identifier keeps it and
// later claimants receive the smallest free numeric suffix ("_1", "_2", ...).
// Callers create one Scope per declaration scope; nothing is shared between
// scopes.
package naming
