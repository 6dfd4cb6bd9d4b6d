package salesforce

import (
	"context"

	"github.com/caselink/caselink/internal/extension"
)

// DeclareFilters returns the filter set for the configured strategy.
func (c *Connector) DeclareFilters() map[string]extension.Filter {
	declared := filterSets[c.config.Strategy]

	out := make(map[string]extension.Filter, len(declared))
	for name, f := range declared {
		out[name] = f
	}
	return out
}

// ResolveFilterValues returns the selectable options for one filter. The
// catalog is permissive: an unrecognized filter name resolves to an empty
// list so callers can probe unknown names safely.
func (c *Connector) ResolveFilterValues(ctx context.Context, name string) ([]extension.FilterValue, error) {
	switch c.config.Strategy {
	case StrategySavedView:
		if name != FilterListView {
			return nil, nil
		}
		return c.resolveListViews(ctx)

	case StrategyStaticCategory:
		if name != FilterCategory {
			return nil, nil
		}
		out := make([]extension.FilterValue, len(categoryValues))
		copy(out, categoryValues)
		return out, nil
	}
	return nil, nil
}

// resolveListViews enumerates saved views on the Case object and maps each
// to a selectable option.
func (c *Connector) resolveListViews(ctx context.Context) ([]extension.FilterValue, error) {
	var result ListViewsResult
	if err := c.FetchJSON(ctx, c.basePath+"/sobjects/Case/listviews", &result); err != nil {
		return nil, err
	}

	out := make([]extension.FilterValue, 0, len(result.ListViews))
	for _, v := range result.ListViews {
		if v == nil || v.ID == "" {
			continue
		}
		out = append(out, extension.FilterValue{Text: v.Label, Value: v.ID})
	}
	return out, nil
}
