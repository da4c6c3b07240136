// Package markup implements the relaxed scanner and serialiser for the
// treeml dialect.
//
// Parse is total: malformed input degrades into best-effort text and
// element nodes instead of errors. Unterminated comments are dropped,
// a truncated opening tag ends the scan, nameless tags and stray
// closing tags are skipped one character at a time. The scan always
// advances, so parsing terminates on any finite input.
//
// Closing tags are matched by the first occurrence of </tag> after the
// opening tag, not by nesting depth. Same-named nested elements
// therefore mis-pair; this is the documented behaviour of the dialect,
// and ParseStrict (built on the HTML5 fragment algorithm) is the
// opt-in alternative when real HTML recovery is wanted.
//
// Element interiors are parsed recursively, so stack use grows with
// the nesting depth of the input.
package markup
