package http

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"strings"
	"sync"
	"testing"

	"github.com/caselink/caselink/internal/host"
)

// --- Test Helpers ---

type stubTransport struct {
	mu      sync.Mutex
	calls   []*nethttp.Request
	handler func(req *nethttp.Request) (*nethttp.Response, error)
}

func (t *stubTransport) RoundTrip(req *nethttp.Request) (*nethttp.Response, error) {
	t.mu.Lock()
	t.calls = append(t.calls, req)
	t.mu.Unlock()
	return t.handler(req)
}

func jsonResponse(status int, body string) *nethttp.Response {
	return &nethttp.Response{
		StatusCode: status,
		Header:     nethttp.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(transport *stubTransport, auth AuthConfig) *Client {
	cfg := DefaultClientConfig()
	cfg.BaseURL = "https://acme.my.salesforce.com"
	cfg.Service = "salesforce"
	cfg.Auth = auth
	cfg.Transport = transport
	return NewClient(cfg)
}

type staticCreds struct {
	token string
	err   error
}

func (s staticCreds) Credential(ctx context.Context, service string, opts host.CredentialOptions) (host.Credential, error) {
	if s.err != nil {
		return host.Credential{}, s.err
	}
	return host.Credential{Token: s.token}, nil
}

// --- Tests ---

func TestDo_SuccessParsesJSON(t *testing.T) {
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		return jsonResponse(200, `{"name":"ok"}`), nil
	}}
	client := newTestClient(transport, BearerToken{Token: "tok-123"})

	resp, err := client.Get(context.Background(), "/services/data/v58.0", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := resp.JSON(&body); err != nil {
		t.Fatalf("JSON decode failed: %v", err)
	}
	if body.Name != "ok" {
		t.Errorf("expected name ok, got %q", body.Name)
	}

	req := transport.calls[0]
	if got := req.Header.Get("Authorization"); got != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", got)
	}
	if req.Header.Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header")
	}
	if req.URL.String() != "https://acme.my.salesforce.com/services/data/v58.0" {
		t.Errorf("unexpected URL: %s", req.URL)
	}
}

func TestDo_NetworkErrorIsConnectivityError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		return nil, cause
	}}
	client := newTestClient(transport, NoAuth{})

	_, err := client.Get(context.Background(), "/services/data/v58.0", nil)

	var connErr *ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectivityError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the network cause to unwrap")
	}
	for _, hint := range []string{"subdomain", "CORS allow-list", "token"} {
		if !strings.Contains(connErr.Error(), hint) {
			t.Errorf("expected remediation to mention %q, got %q", hint, connErr.Error())
		}
	}
}

func TestDo_UnauthorizedIsAuthErrorTaggedWithService(t *testing.T) {
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		return jsonResponse(401, `[{"errorCode":"INVALID_SESSION_ID"}]`), nil
	}}
	client := newTestClient(transport, BearerToken{Token: "stale"})

	_, err := client.Get(context.Background(), "/services/data/v58.0/query", nil)

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
	if authErr.Service != "salesforce" {
		t.Errorf("expected service tag salesforce, got %q", authErr.Service)
	}
}

func TestDo_OtherStatusIsAPIError(t *testing.T) {
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		return jsonResponse(503, `unavailable`), nil
	}}
	client := newTestClient(transport, NoAuth{})

	_, err := client.Get(context.Background(), "/x", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != 503 {
		t.Errorf("expected status 503, got %d", apiErr.StatusCode)
	}
	if !apiErr.IsServerError() {
		t.Error("expected server error classification")
	}
}

func TestDo_NoRetriesOnFailure(t *testing.T) {
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		return jsonResponse(500, `boom`), nil
	}}
	client := newTestClient(transport, NoAuth{})

	_, err := client.Get(context.Background(), "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(transport.calls) != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", len(transport.calls))
	}
}

func TestDo_AbsoluteURLUsedVerbatim(t *testing.T) {
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		return jsonResponse(200, `{}`), nil
	}}
	client := newTestClient(transport, NoAuth{})

	detailURL := "https://acme.my.salesforce.com/services/data/v58.0/sobjects/Case/500xx"
	_, err := client.Get(context.Background(), detailURL, nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := transport.calls[0].URL.String(); got != detailURL {
		t.Errorf("expected verbatim URL, got %s", got)
	}
}

func TestCredentialAuth_AppliesBrokerToken(t *testing.T) {
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		return jsonResponse(200, `{}`), nil
	}}
	client := newTestClient(transport, CredentialAuth{
		Source:  staticCreds{token: "broker-token"},
		Service: "salesforce",
	})

	if _, err := client.Get(context.Background(), "/x", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := transport.calls[0].Header.Get("Authorization"); got != "Bearer broker-token" {
		t.Errorf("expected broker token header, got %q", got)
	}
}

func TestCredentialAuth_UnavailablePropagatesUnchanged(t *testing.T) {
	brokerErr := &host.AuthUnavailableError{Service: "salesforce", Reason: "account not linked"}
	transport := &stubTransport{handler: func(req *nethttp.Request) (*nethttp.Response, error) {
		t.Fatal("no request should be sent when credentials are unavailable")
		return nil, nil
	}}
	client := newTestClient(transport, CredentialAuth{
		Source:  staticCreds{err: brokerErr},
		Service: "salesforce",
	})

	_, err := client.Get(context.Background(), "/x", nil)

	var authErr *host.AuthUnavailableError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthUnavailableError, got %T: %v", err, err)
	}
	if authErr != brokerErr {
		t.Error("expected the broker error to propagate as-is")
	}
}
