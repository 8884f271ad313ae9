// Package gen renders a resolved plan into source artifacts.
//
// Two emitters are provided:
//   - CSharp: a class file with the intent enum, one class per composite,
//     the top-level class, and the TopIntent / FromRecognitionResult helpers
//   - TypeScript: an interface file with the intent enum and one interface
//     per declaration
//
// Generation uses text/template. Emitters only render the plan; they never
// derive types themselves. Every artifact is rendered in memory before any
// file is written, so a failure leaves no partial output behind.
package gen
