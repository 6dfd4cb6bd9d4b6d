package extension

// Descriptor describes an importer for host settings UIs.
type Descriptor struct {
	ID          string
	Title       string
	Vendor      string
	Description string
	DocsURL     string
	Fields      []*FieldDescriptor
}

// FieldDescriptor describes one configurable field of an importer.
type FieldDescriptor struct {
	Key         string
	Label       string
	ValueType   string // "string", "password", "select"
	Required    bool
	Sensitive   bool
	Placeholder string
	Description string
}

// ValidationResult reports the outcome of a connection probe.
type ValidationResult struct {
	Valid           bool
	Message         string
	DetectedVersion string
}
