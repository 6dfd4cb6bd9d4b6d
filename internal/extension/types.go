package extension

import (
	"context"

	"github.com/caselink/caselink/internal/host"
)

// FilterKind is the widget kind a filter renders as in the host UI.
type FilterKind string

// FilterKindSelect is a single-value dropdown.
const FilterKindSelect FilterKind = "select"

// Filter describes one filter the pipeline needs before it can list
// candidates. Declared statically per importer; immutable for the session.
type Filter struct {
	Name     string
	Title    string
	Required bool
	Kind     FilterKind
}

// FilterValue is one selectable option for a filter.
type FilterValue struct {
	Text  string
	Value string
}

// FilterSelection maps filter names to the values the user picked.
type FilterSelection map[string]string

// CandidateRecord is the normalized shape surfaced to the host list UI.
// UniqueID is the remote primary key: stable across listings of the same
// remote entity, and globally unique within one listing (the host uses it
// for de-duplication). Empty string means absent on optional fields.
type CandidateRecord struct {
	UniqueID    string
	Name        string
	URL         string
	CaseNumber  string
	Description string
	Status      string
	Priority    string

	// DetailURL, when set, points at the remote detail resource used for the
	// lazy description fetch during import.
	DetailURL string
}

// Importer is the contract an import pipeline satisfies toward the host.
// Candidates are ephemeral: produced per listing call and consumed for
// display or one import, never cached across calls.
type Importer interface {
	// DeclareFilters returns the filter set for this importer.
	DeclareFilters() map[string]Filter

	// ResolveFilterValues returns the selectable options for one filter.
	// Unknown filter names resolve to an empty list, not an error.
	ResolveFilterValues(ctx context.Context, name string) ([]FilterValue, error)

	// ListCandidates returns importable records for the current selection.
	// A selection missing a required filter value yields an empty list
	// without any remote call.
	ListCandidates(ctx context.Context, sel FilterSelection) ([]CandidateRecord, error)

	// Render produces the read-only HTML summary of a candidate for list
	// display. Pure: no network, no mutation.
	Render(rec CandidateRecord) string

	// ImportRecord writes the candidate into the target record and persists
	// it through the host.
	ImportRecord(ctx context.Context, rec CandidateRecord, target *host.Record) error
}
