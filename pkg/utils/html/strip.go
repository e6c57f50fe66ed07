// ABOUTME: HTML utilities for stripping tags from scraped description text
// ABOUTME: Produces plain text suitable for result descriptions

package html

import (
	"strings"
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&hellip;", "...",
	"&mdash;", "-",
	"&ndash;", "-",
)

// StripHTML removes HTML tags, decodes common entities, and collapses
// whitespace. Vendors embed markup in product copy; result descriptions
// are plain text.
func StripHTML(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	inTag := false
	for _, r := range input {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	text := entityReplacer.Replace(b.String())
	return strings.Join(strings.Fields(text), " ")
}
