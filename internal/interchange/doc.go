// Package interchange converts node trees to and from their JSON wire
// form.
//
// Each node is an object tagged by "type": element nodes carry "tag",
// "attributes" and "children"; text and comment nodes carry "content".
// Attribute order survives both directions: objects are written in
// insertion order and read back member by member.
//
// Unlike the relaxed parser, decoding is not forgiving: an unknown node
// type or a tagless element is an error, because interchange data is
// produced by tools, not typed by hand.
package interchange
