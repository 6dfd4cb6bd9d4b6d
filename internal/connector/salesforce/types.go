package salesforce

import (
	nethttp "net/http"

	connhttp "github.com/caselink/caselink/internal/connector/http"
)

// Strategy selects how the importer builds its case query.
type Strategy string

const (
	// StrategySavedView drives the query from a server-stored list view: the
	// importer fetches the view's describe metadata and uses its SOQL
	// verbatim.
	StrategySavedView Strategy = "saved-view"

	// StrategyStaticCategory interpolates a fixed case category (open or
	// closed) into a built-in SOQL template.
	StrategyStaticCategory Strategy = "static-category"
)

// DefaultAPIVersion is the Salesforce REST API version targeted by default.
const DefaultAPIVersion = "v58.0"

// DefaultService is the identifier used for credential lookup and auth
// error tagging.
const DefaultService = "salesforce"

// Config holds Salesforce connection configuration.
type Config struct {
	// Subdomain is the per-account My Domain subdomain
	// (e.g. "acme" for https://acme.my.salesforce.com). Required.
	Subdomain string `json:"subdomain"`

	// APIVersion is the REST API version (default: v58.0).
	APIVersion string `json:"apiVersion,omitempty"`

	// Strategy selects the query strategy (default: saved-view).
	Strategy Strategy `json:"strategy,omitempty"`

	// Service overrides the remote-service identifier (default: salesforce).
	Service string `json:"service,omitempty"`

	// Transport allows injecting a custom HTTP transport (for tests/stubs).
	Transport nethttp.RoundTripper `json:"-"`
}

// Validate validates the configuration. An absent subdomain is fatal before
// any network call.
func (c *Config) Validate() error {
	if c.Subdomain == "" {
		return &connhttp.ConfigurationMissingError{Setting: "subdomain"}
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Service == "" {
		c.Service = DefaultService
	}
	if c.Strategy == "" {
		c.Strategy = StrategySavedView
	}
	switch c.Strategy {
	case StrategySavedView, StrategyStaticCategory:
	default:
		return &ValidationError{Field: "strategy", Message: "must be saved-view or static-category"}
	}
	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// =============================================================================
// SALESFORCE API RESPONSE TYPES
// Raw payloads are structurally typed with pointer optionals so a JSON null
// and a missing key both decode to nil; normalization happens once in the
// mapper, not at every call site.
// =============================================================================

// Attributes carries sObject metadata returned with every record.
type Attributes struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Case is a raw Salesforce Case sObject.
type Case struct {
	Attributes  Attributes `json:"attributes"`
	ID          string     `json:"Id"`
	CaseNumber  string     `json:"CaseNumber"`
	Subject     *string    `json:"Subject"`
	Description *string    `json:"Description"`
	Status      *string    `json:"Status"`
	Priority    *string    `json:"Priority"`
}

// QueryResult is the raw paginated query envelope. Only the first page is
// ever consumed: Done=false with a NextRecordsURL means the result set was
// truncated, which this importer preserves as a documented limitation.
type QueryResult struct {
	Done           bool    `json:"done"`
	TotalSize      int     `json:"totalSize"`
	NextRecordsURL string  `json:"nextRecordsUrl,omitempty"`
	Records        []*Case `json:"records"`
}

// ListView is one saved view definition on the Case object.
type ListView struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	DeveloperName string `json:"developerName,omitempty"`
	DescribeURL   string `json:"describeUrl,omitempty"`
}

// ListViewsResult is the envelope returned when enumerating saved views.
type ListViewsResult struct {
	Done      bool        `json:"done"`
	Size      int         `json:"size"`
	ListViews []*ListView `json:"listviews"`
}

// ListViewDescribe is the describe metadata for one saved view, carrying its
// canonical query text.
type ListViewDescribe struct {
	ID    string `json:"id"`
	Query string `json:"query"`
}
