// Package sanitizer holds the small text helpers used when rendering
// notifications into markup.
//
// EscapeMarkup turns untrusted text into inert markup by replacing every
// character that can open a tag, terminate an attribute value or start an
// entity. UnescapeMarkup reverses it exactly:
//
//	safe := sanitizer.EscapeMarkup(`<b onclick="x()">hi</b>`)
//	sanitizer.UnescapeMarkup(safe) // original text
//
// ClassTokens normalizes class attribute values: it splits space separated
// lists, drops empty tokens and removes duplicates while preserving order.
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
