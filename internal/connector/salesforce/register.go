package salesforce

import (
	"github.com/caselink/caselink/internal/extension"
)

// init registers the Salesforce case importer factory with the global
// registry.
func init() {
	extension.DefaultRegistry().Register("salesforce.cases", func(config map[string]any, deps extension.Deps) (extension.Importer, error) {
		cfg := &Config{
			Subdomain:  getString(config, "subdomain", ""),
			APIVersion: getString(config, "apiVersion", ""),
			Strategy:   Strategy(getString(config, "strategy", "")),
			Service:    getString(config, "service", ""),
		}
		return New(cfg, deps.Credentials, deps.Persister, deps.Logger)
	})
}

// --- Config Helpers ---

func getString(m map[string]any, key, defaultVal string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return defaultVal
}
