package salesforce

import "github.com/caselink/caselink/internal/extension"

// =============================================================================
// API LIBRARY
// Catalog of Salesforce REST API endpoints used by this connector.
// =============================================================================

// APIEndpoint describes a Salesforce REST API endpoint.
type APIEndpoint struct {
	Method      string
	Path        string
	Description string
	DocsURL     string
	Scope       string
}

// APILibrary contains all Salesforce API endpoints used by this connector.
var APILibrary = map[string]APIEndpoint{
	"query_exec": {
		Method:      "GET",
		Path:        "/services/data/{version}/query",
		Description: "Execute a SOQL query (first page of results)",
		DocsURL:     "https://developer.salesforce.com/docs/atlas.en-us.api_rest.meta/api_rest/resources_query.htm",
		Scope:       "cases",
	},
	"listview_enum": {
		Method:      "GET",
		Path:        "/services/data/{version}/sobjects/Case/listviews",
		Description: "Enumerate saved list views on the Case object",
		DocsURL:     "https://developer.salesforce.com/docs/atlas.en-us.api_rest.meta/api_rest/resources_listviews.htm",
		Scope:       "filters",
	},
	"listview_describe": {
		Method:      "GET",
		Path:        "/services/data/{version}/sobjects/Case/listviews/{id}/describe",
		Description: "Fetch the canonical SOQL behind a saved list view",
		DocsURL:     "https://developer.salesforce.com/docs/atlas.en-us.api_rest.meta/api_rest/resources_listviewdescribe.htm",
		Scope:       "filters",
	},
	"case_detail": {
		Method:      "GET",
		Path:        "/services/data/{version}/sobjects/Case/{id}",
		Description: "Fetch one case by its reference URL (fallback description lookup)",
		DocsURL:     "https://developer.salesforce.com/docs/atlas.en-us.api_rest.meta/api_rest/resources_sobject_retrieve.htm",
		Scope:       "cases",
	},
	"version_root": {
		Method:      "GET",
		Path:        "/services/data/{version}",
		Description: "Version root, used as the connection probe",
		DocsURL:     "https://developer.salesforce.com/docs/atlas.en-us.api_rest.meta/api_rest/resources_discoveryresource.htm",
		Scope:       "system",
	},
}

// =============================================================================
// FILTER DECLARATIONS
// The filter surface per query strategy. Declared statically; immutable for
// the session.
// =============================================================================

// Filter names.
const (
	FilterListView = "listViewId"
	FilterCategory = "category"
)

var filterSets = map[Strategy]map[string]extension.Filter{
	StrategySavedView: {
		FilterListView: {
			Name:     FilterListView,
			Title:    "Saved view",
			Required: true,
			Kind:     extension.FilterKindSelect,
		},
	},
	StrategyStaticCategory: {
		FilterCategory: {
			Name:     FilterCategory,
			Title:    "Case status",
			Required: true,
			Kind:     extension.FilterKindSelect,
		},
	},
}

// categoryValues is the fixed option list for the static-category strategy.
var categoryValues = []extension.FilterValue{
	{Text: "Open cases", Value: "open"},
	{Text: "Closed cases", Value: "closed"},
}

// categoryQueryTemplate is the fixed SOQL used by the static-category
// strategy. %s is the IsClosed literal derived from the category value.
const categoryQueryTemplate = `SELECT Id, CaseNumber, Subject, Description,
	Status, Priority FROM Case WHERE IsClosed = %s
	ORDER BY LastModifiedDate DESC`
