// Package palette is the registry of glyph palettes used by the renderers.
//
// Palettes live in separate namespaces, one per rendering mode, so the same
// name can mean different glyphs: "arrows" has three glyphs for delta
// sparklines and five for trend sparklines. Lookups are always keyed by
// (Namespace, name) and are case-sensitive.
//
// Bar glyphs are a second table keyed by (Shape, color).
//
// All tables are compiled in, registered during init and frozen before any
// caller can reach them.
package palette
