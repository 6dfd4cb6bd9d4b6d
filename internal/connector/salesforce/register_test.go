package salesforce_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	connhttp "github.com/caselink/caselink/internal/connector/http"
	"github.com/caselink/caselink/internal/extension"

	// Import to register the importer factory
	_ "github.com/caselink/caselink/internal/connector/salesforce"
)

func TestFactoryRegistered(t *testing.T) {
	registry := extension.DefaultRegistry()
	if _, ok := registry.Get("salesforce.cases"); !ok {
		t.Fatal("salesforce.cases factory not registered")
	}
}

func TestRegistryCreate_FromConfigMap(t *testing.T) {
	registry := extension.DefaultRegistry()

	imp, err := registry.Create("salesforce.cases", map[string]any{
		"subdomain": "acme",
		"strategy":  "static-category",
	}, extension.Deps{Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	filters := imp.DeclareFilters()
	if _, ok := filters["category"]; !ok {
		t.Errorf("expected static-category filter surface, got %v", filters)
	}
}

func TestRegistryCreate_MissingSubdomain(t *testing.T) {
	registry := extension.DefaultRegistry()

	_, err := registry.Create("salesforce.cases", map[string]any{}, extension.Deps{Logger: zerolog.Nop()})

	var cfgErr *connhttp.ConfigurationMissingError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationMissingError, got %T: %v", err, err)
	}
}
