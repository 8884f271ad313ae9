// Package diagnostic provides the error kinds and the non-fatal warnings
// produced while turning a LUIS export into generated source.
//
// Fatal conditions are reported as errors:
//   - SchemaError: the export is missing required fields or is malformed
//   - IOError: the input cannot be read or the output cannot be written
//   - UnsupportedKindError: an entity kind the type mapper cannot classify
//
// Everything else is collected in Diagnostics so the caller can decide how
// to surface it:
//   - Duplicate entity names dropped during section merging
//   - Unknown prebuilt recognizers degraded to strings
//   - Composites without children degraded to strings
package diagnostic
