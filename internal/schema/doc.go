// Package schema loads LUIS model exports into an explicit, immutable
// Document model.
//
// An export carries its entities in several sections whose presence depends
// on the export version. The loader merges them into a single ordered
// sequence using a fixed section order:
//
//  1. simple: "entities", then "regex_entities"
//  2. composite: "composites", then "hierarchicals"
//  3. list: "closedLists"
//  4. prebuilt: "prebuiltEntities"
//  5. pattern-any: "patternAnyEntities"
//
// Source order is preserved inside each section. When the same entity name
// appears more than once the first occurrence wins and the later ones are
// reported as diagnostics.
//
// Composite children may be written either as full entity objects (newer
// exports, arbitrarily nested) or as bare names referring to an entity
// declared elsewhere in the export.
package schema
