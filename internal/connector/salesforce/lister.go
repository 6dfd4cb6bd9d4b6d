package salesforce

import (
	"context"
	"net/url"

	"github.com/caselink/caselink/internal/extension"
)

// ListCandidates builds the configured query, runs it, and maps each raw
// case to a candidate record.
//
// The query API paginates; this importer deliberately consumes only the
// first page. A Done=false envelope means the listing was truncated, which
// is logged but not followed.
func (c *Connector) ListCandidates(ctx context.Context, sel extension.FilterSelection) ([]extension.CandidateRecord, error) {
	query, ok, err := c.buildQuery(ctx, sel)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []extension.CandidateRecord{}, nil
	}

	resp, err := c.Client.Get(ctx, c.basePath+"/query", url.Values{
		"q": {normalizeSOQL(query)},
	})
	if err != nil {
		return nil, err
	}

	var result QueryResult
	if err := resp.JSON(&result); err != nil {
		return nil, err
	}

	if !result.Done {
		c.log.Debug().
			Int("totalSize", result.TotalSize).
			Int("returned", len(result.Records)).
			Msg("query result truncated to first page")
	}

	out := make([]extension.CandidateRecord, 0, len(result.Records))
	for _, raw := range result.Records {
		if raw == nil {
			continue
		}
		out = append(out, c.toCandidate(raw))
	}
	return out, nil
}
