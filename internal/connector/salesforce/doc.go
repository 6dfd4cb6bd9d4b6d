// Package salesforce implements a Salesforce support-case importer using the
// extension importer contract. It discovers saved views (or a fixed category
// list), runs a single SOQL query per listing, normalizes cases into
// candidate records, and writes selected cases into host records.
//
// Listing consumes only the first page of query results; larger result sets
// are truncated.
package salesforce
