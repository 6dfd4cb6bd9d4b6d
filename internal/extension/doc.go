// Package extension defines the importer contract between case-import
// pipelines and the hosting platform: the filter and candidate types that
// cross the boundary, the five lifecycle hooks a pipeline binds, and a
// factory registry for instantiating importers by ID.
package extension
