package salesforce

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/caselink/caselink/internal/extension"
)

// =============================================================================
// QUERY BUILDER
// One builder polymorphic over the closed strategy set, selected by
// configuration.
// =============================================================================

// buildQuery returns the SOQL for the current selection. ok=false means the
// required filter value is absent and no query can be built; callers treat
// that as an empty candidate list, not an error.
func (c *Connector) buildQuery(ctx context.Context, sel extension.FilterSelection) (query string, ok bool, err error) {
	switch c.config.Strategy {
	case StrategySavedView:
		id := sel[FilterListView]
		if id == "" {
			return "", false, nil
		}
		var describe ListViewDescribe
		path := fmt.Sprintf("%s/sobjects/Case/listviews/%s/describe", c.basePath, url.PathEscape(id))
		if err := c.FetchJSON(ctx, path, &describe); err != nil {
			return "", false, err
		}
		if describe.Query == "" {
			return "", false, nil
		}
		// The saved view's canonical query is used verbatim.
		return describe.Query, true, nil

	case StrategyStaticCategory:
		category := sel[FilterCategory]
		if category == "" {
			return "", false, nil
		}
		closed := "false"
		if category == "closed" {
			closed = "true"
		}
		return fmt.Sprintf(categoryQueryTemplate, closed), true, nil
	}
	return "", false, nil
}

// normalizeSOQL collapses runs of whitespace to single spaces so multi-line
// query text percent-encodes cleanly.
func normalizeSOQL(q string) string {
	return strings.Join(strings.Fields(q), " ")
}
