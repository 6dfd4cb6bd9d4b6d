// Package cli implements the caselink CLI commands. The CLI is a minimal
// host harness: it plays the host platform's part (credential source, record
// persistence) so the import pipeline can be exercised from a terminal.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/caselink/caselink/internal/config"
	"github.com/caselink/caselink/internal/extension"
	"github.com/caselink/caselink/internal/host"

	// Import to register the importer factory
	_ "github.com/caselink/caselink/internal/connector/salesforce"
)

var (
	configPath    string
	subdomainFlag string
	strategyFlag  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "caselink",
	Short: "Import Salesforce support cases into host records",
	Long:  "Caselink discovers, lists, and imports Salesforce support cases. Filters, candidate listing, and import run the same pipeline the host platform binds via lifecycle hooks.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML); env CASELINK_* overrides")
	RootCmd.PersistentFlags().StringVar(&subdomainFlag, "subdomain", "", "Salesforce subdomain (overrides config)")
	RootCmd.PersistentFlags().StringVar(&strategyFlag, "strategy", "", "Query strategy: saved-view or static-category")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if subdomainFlag != "" {
		cfg.Subdomain = subdomainFlag
	}
	if strategyFlag != "" {
		cfg.Strategy = strategyFlag
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// newImporter instantiates the registered importer with the CLI standing in
// as host.
func newImporter() (extension.Importer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	deps := extension.Deps{
		Credentials: host.EnvCredentialSource{Var: cfg.TokenEnv},
		Persister:   host.WriterPersister{W: os.Stdout},
		Logger:      newLogger(cfg),
	}
	return extension.DefaultRegistry().Create("salesforce.cases", cfg.ConnectorConfig(), deps)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
