package maplinks

import (
	"fmt"
	"html"
)

// This file contains the shared iframe renderer used by providers with an
// embeddable scheme (Google and OpenStreetMap).

// embedConfig holds the embed request for a builder. Width and height are
// floored at zero; the enabled flag gates the EmbedHTML output entirely.
type embedConfig struct {
	enabled bool
	width   int
	height  int
}

func (e *embedConfig) set(width, height int) {
	e.enabled = true
	e.width = max(width, 0)
	e.height = max(height, 0)
}

// renderIframe wraps src in an iframe tag. The URL is escaped for HTML
// attribute insertion, never emitted raw.
func renderIframe(e embedConfig, src string) string {
	return fmt.Sprintf(
		`<iframe width="%d" height="%d" style="border:0" loading="lazy" allowfullscreen src="%s"></iframe>`,
		e.width, e.height, html.EscapeString(src),
	)
}
