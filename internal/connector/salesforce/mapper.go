package salesforce

import "github.com/caselink/caselink/internal/extension"

// =============================================================================
// RECORD MAPPER
// Raw payloads are validated and normalized here, once, rather than at
// every call site.
// =============================================================================

// toCandidate maps a raw case to the normalized candidate shape.
// Deterministic and side-effect free; nil optional fields become empty
// strings rather than errors. The deep link is derived purely from the
// configured subdomain and the record's primary key.
func (c *Connector) toCandidate(raw *Case) extension.CandidateRecord {
	rec := extension.CandidateRecord{
		UniqueID:   raw.ID,
		CaseNumber: raw.CaseNumber,
		URL:        c.deepLink(raw.ID),
	}

	rec.Name = deref(raw.Subject)
	if rec.Name == "" {
		rec.Name = "Case " + raw.CaseNumber
	}
	rec.Description = deref(raw.Description)
	rec.Status = deref(raw.Status)
	rec.Priority = deref(raw.Priority)

	if raw.Attributes.URL != "" {
		rec.DetailURL = c.instanceURL + raw.Attributes.URL
	}

	return rec
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
