// Package http provides a generic HTTP base for REST API connectors.
//
// Structure:
//
//	client.go - rate-limited client with outcome classification
//	auth.go   - authentication strategies (bearer, host credential broker)
//	errors.go - error taxonomy shared by all remote calls
//	base.go   - embeddable connector base
package http
