package salesforce

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	connhttp "github.com/caselink/caselink/internal/connector/http"
	"github.com/caselink/caselink/internal/extension"
	"github.com/caselink/caselink/internal/host"
)

// =============================================================================
// SALESFORCE CASE CONNECTOR
// Implements extension.Importer
// =============================================================================

// Ensure interface compliance
var _ extension.Importer = (*Connector)(nil)

// Connector is the Salesforce support-case importer.
type Connector struct {
	*connhttp.Base
	config *Config

	instanceURL string
	basePath    string

	persister host.RecordPersister
	log       zerolog.Logger
}

// New creates a Salesforce case connector with the given configuration and
// host collaborators. The subdomain is required configuration; its absence
// fails here, before any network call.
func New(config *Config, creds host.CredentialSource, persister host.RecordPersister, log zerolog.Logger) (*Connector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instanceURL := fmt.Sprintf("https://%s.my.salesforce.com", config.Subdomain)

	httpConfig := connhttp.DefaultClientConfig()
	httpConfig.BaseURL = instanceURL
	httpConfig.Service = config.Service
	httpConfig.Auth = connhttp.CredentialAuth{Source: creds, Service: config.Service}
	httpConfig.Headers["Accept"] = "application/json"
	httpConfig.Transport = config.Transport
	httpConfig.Logger = log

	c := &Connector{
		Base:        connhttp.NewBase("salesforce.cases", "Salesforce Cases", "Salesforce", httpConfig),
		config:      config,
		instanceURL: instanceURL,
		basePath:    "/services/data/" + config.APIVersion,
		persister:   persister,
		log:         log,
	}

	return c, nil
}

// ValidateConfig probes the REST version root to confirm the subdomain and
// credential work.
func (c *Connector) ValidateConfig(ctx context.Context) (*extension.ValidationResult, error) {
	_, err := c.Client.Get(ctx, c.basePath, nil)
	if err != nil {
		if apiErr, ok := err.(*connhttp.APIError); ok {
			return &extension.ValidationResult{
				Valid:   false,
				Message: fmt.Sprintf("Connection failed: HTTP %d", apiErr.StatusCode),
			}, nil
		}
		return nil, err
	}

	return &extension.ValidationResult{
		Valid:           true,
		Message:         "Connection successful",
		DetectedVersion: c.config.APIVersion,
	}, nil
}

// GetDescriptor returns the connector descriptor for host settings UIs.
func (c *Connector) GetDescriptor() *extension.Descriptor {
	return &extension.Descriptor{
		ID:          "salesforce.cases",
		Title:       "Salesforce Cases",
		Vendor:      "Salesforce",
		Description: "Imports Salesforce support cases as candidate records",
		DocsURL:     "https://developer.salesforce.com/docs/atlas.en-us.api_rest.meta/api_rest/",
		Fields: []*extension.FieldDescriptor{
			{Key: "subdomain", Label: "Salesforce subdomain", ValueType: "string", Required: true, Placeholder: "acme"},
			{Key: "apiVersion", Label: "API version", ValueType: "string", Placeholder: DefaultAPIVersion},
			{Key: "strategy", Label: "Query strategy", ValueType: "select", Description: "saved-view or static-category"},
		},
	}
}

// deepLink builds the URL that opens a case directly in the Salesforce UI.
func (c *Connector) deepLink(id string) string {
	return c.instanceURL + "/" + id
}
