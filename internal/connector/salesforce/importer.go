package salesforce

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/caselink/caselink/internal/extension"
	"github.com/caselink/caselink/internal/host"
)

// =============================================================================
// IMPORT
// Description resolution is a pure decision (inline, fallback fetch, or
// none) kept separate from persistence so it is testable without a
// persistence stub.
// =============================================================================

// ResolveDescription decides the rich-text body for an import: the inline
// description when present, otherwise one detail fetch against the
// candidate's reference URL. A failed detail fetch is logged and degrades
// to an empty body; it never aborts the import.
func (c *Connector) ResolveDescription(ctx context.Context, rec extension.CandidateRecord) string {
	if rec.Description != "" {
		return toRichText(rec.Description)
	}
	if rec.DetailURL == "" {
		return ""
	}

	var detail Case
	if err := c.FetchJSON(ctx, rec.DetailURL, &detail); err != nil {
		c.log.Warn().
			Err(err).
			Str("case", rec.UniqueID).
			Msg("detail fetch failed, importing link only")
		return ""
	}
	return toRichText(deref(detail.Description))
}

// ImportRecord composes the final description and writes it into the target
// record. Re-running overwrites the description rather than appending. Only
// a failure of the host's persistence call is fatal.
func (c *Connector) ImportRecord(ctx context.Context, rec extension.CandidateRecord, target *host.Record) error {
	body := c.ResolveDescription(ctx, rec)

	var b strings.Builder
	if body != "" {
		fmt.Fprintf(&b, "<p>%s</p>", body)
	}
	link := host.SanitizeURL(rec.URL)
	fmt.Fprintf(&b, `<p><a href="%s">View case %s in Salesforce</a></p>`,
		link, html.EscapeString(rec.CaseNumber))

	target.Description = b.String()

	if err := c.persister.Save(ctx, target); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// toRichText escapes the plain-text description and converts line endings
// to HTML breaks.
func toRichText(s string) string {
	if s == "" {
		return ""
	}
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	s = strings.ReplaceAll(s, "\r", "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}
