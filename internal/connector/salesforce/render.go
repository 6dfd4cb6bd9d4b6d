package salesforce

import (
	"fmt"
	"html"
	"strings"

	"github.com/caselink/caselink/internal/extension"
	"github.com/caselink/caselink/internal/host"
)

// Render produces the read-only HTML summary shown in the host's candidate
// list: case number, external deep link, title as a link, and a status
// badge. Pure: no network, no mutation. Every externally sourced URL passes
// through the host sanitizer before it becomes a link target.
func (c *Connector) Render(rec extension.CandidateRecord) string {
	link := host.SanitizeURL(rec.URL)

	var b strings.Builder
	b.WriteString(`<div class="case-candidate">`)

	fmt.Fprintf(&b, `<span class="case-number">%s</span>`, html.EscapeString(rec.CaseNumber))
	if link != "" {
		fmt.Fprintf(&b, `<a class="case-external" href="%s" target="_blank" rel="noopener noreferrer">&#8599;</a>`, link)
	}

	title := html.EscapeString(rec.Name)
	if link != "" {
		fmt.Fprintf(&b, `<a class="case-title" href="%s">%s</a>`, link, title)
	} else {
		fmt.Fprintf(&b, `<span class="case-title">%s</span>`, title)
	}

	if rec.Status != "" {
		fmt.Fprintf(&b, `<span class="case-status">%s</span>`, html.EscapeString(rec.Status))
	}

	b.WriteString(`</div>`)
	return b.String()
}
