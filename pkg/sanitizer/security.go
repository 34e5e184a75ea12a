package sanitizer

import "strings"

// markupEscaper covers the characters that can open a tag, close an attribute
// value or start an entity. Slash, backtick and equals are included so escaped
// text stays inert even when it lands inside an unquoted attribute.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"/", "&#x2F;",
	"`", "&#x60;",
	"=", "&#x3D;",
)

var markupUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#x2F;", "/",
	"&#x60;", "`",
	"&#x3D;", "=",
	"&amp;", "&",
)

// EscapeMarkup replaces markup-significant characters with HTML entities.
func EscapeMarkup(s string) string {
	if s == "" {
		return s
	}
	return markupEscaper.Replace(s)
}

// UnescapeMarkup reverses EscapeMarkup. Entities outside the escape map are left as is.
func UnescapeMarkup(s string) string {
	if s == "" {
		return s
	}
	return markupUnescaper.Replace(s)
}
