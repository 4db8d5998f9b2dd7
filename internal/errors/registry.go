package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Document errors (V001-V019)

	"V001": {
		Category: CategoryDocument,
		Message:  "Document references an unregistered component",
		Detail:   "Every tag in a document must be registered before deserialization. A missing type cannot be rendered correctly, so the document is rejected rather than patched.",
		DocURL:   "https://vellum-ui.dev/docs/errors/V001",
	},
	"V002": {
		Category: CategoryDocument,
		Message:  "Document version is incompatible",
		Detail:   "The node's version has no exact match and no declared migration path to the registered version.",
		DocURL:   "https://vellum-ui.dev/docs/errors/V002",
	},
	"V003": {
		Category: CategoryDocument,
		Message:  "Document is structurally invalid",
		Detail:   "A node is missing its tag or version, or carries a value with no document representation.",
		DocURL:   "https://vellum-ui.dev/docs/errors/V003",
	},
	"V004": {
		Category: CategoryDocument,
		Message:  "Document exceeds the configured depth limit",
		Detail:   "The document nests deeper than the limit installed for untrusted input.",
		DocURL:   "https://vellum-ui.dev/docs/errors/V004",
	},

	// Registry errors (V020-V029)

	"V020": {
		Category: CategoryRegistry,
		Message:  "Duplicate component registration",
		Detail:   "A tag was registered twice with different versions and no migration path between them.",
		DocURL:   "https://vellum-ui.dev/docs/errors/V020",
	},

	// Config errors (V030-V039)

	"V030": {
		Category: CategoryConfig,
		Message:  "Configuration file is invalid",
		Detail:   "vellum.yaml could not be parsed or contains invalid values.",
		DocURL:   "https://vellum-ui.dev/docs/errors/V030",
	},

	// Store errors (V040-V049)

	"V040": {
		Category: CategoryStore,
		Message:  "Document not found in store",
		Detail:   "No document with the requested name exists in the configured store.",
		DocURL:   "https://vellum-ui.dev/docs/errors/V040",
	},
}
