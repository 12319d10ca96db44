// Package openexchange renders models into Open Exchange-style XML documents.
//
// The package builds a structured fragment tree (one node per element,
// relationship, and visual shape) and serializes it with encoding/xml in a
// single escaping-safe pass. There is no string templating of markup;
// escaping correctness comes from the marshaller.
//
// # Generators
//
//   - [ElementGenerator]: one element fragment per model element, with
//     generated documentation and optional layer grouping
//   - [RelationshipGenerator]: one relationship fragment per edge, with
//     optional verb-composed names, type grouping, and hard reference checks
//   - [ViewGenerator]: one positioned, styled shape per element and one
//     connection per relationship, from a layout and a theme
//   - [Assemble]: composes header, element block, relationship block, and an
//     optional view block into one complete document
//
// # Ordering
//
// The element block always precedes the relationship block; the view block,
// when present, is last. Grouped output follows the canonical layer and
// relationship-type orders defined in pkg/model.
//
// Generators read their documentation templates once at construction.
// Construct a generator once and reuse it across calls.
package openexchange
