package domain

import "strings"

// DefaultVoidTags are the element kinds that never carry children or a
// closing tag.
var DefaultVoidTags = []string{"br", "img", "input", "link", "meta", "hr", "source", "area"}

// DefaultRawTextTags are the element kinds whose interiors are kept as
// one verbatim text child instead of being parsed.
var DefaultRawTextTags = []string{"script"}

// Dialect describes the tag-level behaviour of a markup dialect: which
// tags are void and which hold raw text. The zero value treats no tag
// specially; use DefaultDialect for the relaxed HTML subset.
type Dialect struct {
	voids   map[string]bool
	rawText map[string]bool
}

// DefaultDialect returns the relaxed HTML subset dialect.
func DefaultDialect() Dialect {
	return NewDialect(DefaultVoidTags, DefaultRawTextTags)
}

// NewDialect builds a dialect from explicit tag lists. Tag names are
// lowercased on the way in.
func NewDialect(voidTags, rawTextTags []string) Dialect {
	return Dialect{
		voids:   tagSet(voidTags),
		rawText: tagSet(rawTextTags),
	}
}

// WithVoidTags returns a copy of the dialect with extra void tags.
func (d Dialect) WithVoidTags(tags ...string) Dialect {
	return Dialect{
		voids:   extendTagSet(d.voids, tags),
		rawText: copyTagSet(d.rawText),
	}
}

// WithRawTextTags returns a copy of the dialect with extra raw-text
// tags.
func (d Dialect) WithRawTextTags(tags ...string) Dialect {
	return Dialect{
		voids:   copyTagSet(d.voids),
		rawText: extendTagSet(d.rawText, tags),
	}
}

// IsVoid reports whether tag is a void element. The tag is expected in
// lowercase, as produced by the parser.
func (d Dialect) IsVoid(tag string) bool {
	return d.voids[tag]
}

// IsRawText reports whether tag holds raw text.
func (d Dialect) IsRawText(tag string) bool {
	return d.rawText[tag]
}

// VoidTags returns the void tag names in no particular order.
func (d Dialect) VoidTags() []string {
	return tagList(d.voids)
}

// RawTextTags returns the raw-text tag names in no particular order.
func (d Dialect) RawTextTags() []string {
	return tagList(d.rawText)
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[strings.ToLower(tag)] = true
	}
	return set
}

func copyTagSet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for tag := range set {
		out[tag] = true
	}
	return out
}

func extendTagSet(set map[string]bool, tags []string) map[string]bool {
	out := copyTagSet(set)
	for _, tag := range tags {
		out[strings.ToLower(tag)] = true
	}
	return out
}

func tagList(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	return out
}
