package http

import "fmt"

// =============================================================================
// ERROR TAXONOMY
// Every remote call resolves to exactly one of these classes. All of them
// propagate unmodified to the host, which owns user-facing presentation.
// =============================================================================

// ConfigurationMissingError reports a required account setting that is
// absent. Raised before any network attempt; the user must fix settings.
type ConfigurationMissingError struct {
	Setting string
}

func (e *ConfigurationMissingError) Error() string {
	return fmt.Sprintf("configuration missing: %s", e.Setting)
}

// AuthError is an HTTP 401 from the remote service, tagged with the service
// identifier so the host can trigger its re-auth flow.
type AuthError struct {
	Service string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authentication rejected (HTTP 401)", e.Service)
}

// ConnectivityError is a network-level failure (DNS, TLS, CORS rejection,
// connection refused). It carries remediation guidance and is never
// swallowed silently.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("could not reach %s: %v. %s", e.URL, e.Err, e.Advice())
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// Advice returns user-actionable remediation text.
func (e *ConnectivityError) Advice() string {
	return "Check that the configured subdomain is correct, that the remote " +
		"service's CORS allow-list includes this origin, and that the access " +
		"token has not expired."
}

// APIError is any other non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// IsServerError returns true if this is a server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
