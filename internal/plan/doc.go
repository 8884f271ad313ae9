// Package plan turns a loaded export into the language-neutral model every
// emitter renders from.
//
// The type mapper (ResolveType) decides the emitted type of one entity from
// its kind, prebuilt recognizer and children alone:
//
//	simple                       -> string
//	list                         -> sequence of string
//	prebuilt, known recognizer   -> number / date-time / boolean / string,
//	                                repeated when the recognizer is list-valued
//	prebuilt, unknown recognizer -> string
//	composite with children      -> nested declaration
//	composite without children   -> string
//
// Every entity-derived field is optional: recognition is probabilistic and an
// utterance need not populate every field.
//
// Resolve walks the document once and produces a Plan: the sanitized type
// names, the intent enumeration in encounter order, the top-level declaration
// and one nested declaration per composite. Emitters never re-derive types;
// they only render the Plan.
package plan
