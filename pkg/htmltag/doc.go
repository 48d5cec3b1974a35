// Package htmltag builds HTML element strings from an insertion-ordered
// attribute list. Attribute order is preserved byte-for-byte so rendered
// markup stays reproducible across runs; attributes whose value is nil or
// false are omitted and every value is HTML-escaped.
package htmltag
