package extension

// Hook names the lifecycle points the host binds importer operations to.
type Hook string

const (
	HookFilters      Hook = "importer.filters"
	HookFilterValues Hook = "importer.filterValues"
	HookCandidates   Hook = "importer.candidates"
	HookRender       Hook = "importer.render"
	HookImport       Hook = "importer.import"
)

// Bindings binds an importer's operations to their lifecycle hooks. This is
// the complete surface the pipeline exposes to the host: exactly these five
// operations and no others.
func Bindings(imp Importer) map[Hook]any {
	return map[Hook]any{
		HookFilters:      imp.DeclareFilters,
		HookFilterValues: imp.ResolveFilterValues,
		HookCandidates:   imp.ListCandidates,
		HookRender:       imp.Render,
		HookImport:       imp.ImportRecord,
	}
}
