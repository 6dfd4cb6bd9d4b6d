package host

import (
	"context"
	"fmt"
	"io"
	"os"
)

// EnvCredentialSource reads a static bearer token from an environment
// variable. It stands in for the host's auth broker when the pipeline runs
// from the CLI harness.
type EnvCredentialSource struct {
	// Var is the environment variable holding the token.
	Var string
}

// Credential returns the token from the environment, or AuthUnavailableError
// when the variable is unset.
func (s EnvCredentialSource) Credential(ctx context.Context, service string, opts CredentialOptions) (Credential, error) {
	token := os.Getenv(s.Var)
	if token == "" {
		return Credential{}, &AuthUnavailableError{
			Service: service,
			Reason:  s.Var + " not set",
		}
	}
	return Credential{Token: token}, nil
}

// WriterPersister writes saved records to a writer instead of a backing
// store. Used by the CLI harness to show what an import would persist.
type WriterPersister struct {
	W io.Writer
}

// Save prints the record.
func (p WriterPersister) Save(ctx context.Context, rec *Record) error {
	_, err := fmt.Fprintf(p.W, "record %s (%s):\n%s\n", rec.ID, rec.Name, rec.Description)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
