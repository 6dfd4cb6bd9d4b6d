// Package host declares the narrow interfaces through which the import
// pipeline talks to the hosting product-management platform: credential
// acquisition, record persistence, and URL sanitation. The platform itself
// (plugin registration, settings UI, theming) is an external collaborator.
package host

import (
	"context"
	"fmt"
)

// Credential is a bearer credential issued by the host's auth broker.
type Credential struct {
	Token string
}

// CredentialOptions control how a credential is acquired.
type CredentialOptions struct {
	// UseCachedRetry asks the broker for a cached credential first and only
	// falls back to an interactive re-auth flow when the cached one is
	// rejected by the remote service.
	UseCachedRetry bool
}

// CredentialSource acquires credentials for a remote service. The host owns
// caching and interactive re-authentication; callers get a token or an error.
type CredentialSource interface {
	Credential(ctx context.Context, service string, opts CredentialOptions) (Credential, error)
}

// AuthUnavailableError means the broker could not produce a credential at
// all (user cancelled, account not linked). Callers propagate it unchanged.
type AuthUnavailableError struct {
	Service string
	Reason  string
}

func (e *AuthUnavailableError) Error() string {
	return fmt.Sprintf("%s: credential unavailable: %s", e.Service, e.Reason)
}

// Record is the host-owned record an import writes into. The host persists
// it; the pipeline only mutates Description.
type Record struct {
	ID          string
	Name        string
	Description string
}

// RecordPersister saves a host record through the host's save contract.
// A persistence failure (storage, permission) is fatal to an import.
type RecordPersister interface {
	Save(ctx context.Context, rec *Record) error
}
