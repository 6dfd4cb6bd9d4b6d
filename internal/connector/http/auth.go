package http

import (
	"net/http"

	"github.com/caselink/caselink/internal/host"
)

// =============================================================================
// AUTHENTICATION STRATEGIES
// =============================================================================

// AuthConfig represents authentication configuration. Apply may consult the
// request's context; a non-nil error aborts the request before it is sent.
type AuthConfig interface {
	Apply(req *http.Request) error
}

// NoAuth represents no authentication.
type NoAuth struct{}

func (a NoAuth) Apply(req *http.Request) error { return nil }

// BearerToken uses a fixed Bearer token.
type BearerToken struct {
	Token string
}

// Apply adds the Bearer token header to the request.
func (a BearerToken) Apply(req *http.Request) error {
	if a.Token == "" {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	return nil
}

// CredentialAuth pulls a bearer token from the host's credential broker on
// every request, in cached-first mode: the broker returns a cached
// credential when it has one and only runs an interactive re-auth flow when
// that credential has been rejected. Asking per request means a re-auth
// performed by the host is picked up without reconstructing the client.
type CredentialAuth struct {
	Source  host.CredentialSource
	Service string
}

// Apply resolves a credential and sets the Authorization header. A broker
// failure (host.AuthUnavailableError) propagates unchanged.
func (a CredentialAuth) Apply(req *http.Request) error {
	if a.Source == nil {
		return nil
	}
	cred, err := a.Source.Credential(req.Context(), a.Service, host.CredentialOptions{UseCachedRetry: true})
	if err != nil {
		return err
	}
	if cred.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}
	return nil
}
