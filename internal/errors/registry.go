package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Kind    Kind
	Message string
	Detail  string
}

// Registered codes referenced from code.
const (
	CodeInvalidBody   = "E100"
	CodeMalformedJSON = "E101"
	CodeMissingID     = "E102"
	CodeNotFound      = "E104"
	CodeInternal      = "E199"

	CodeRouteNotFound     = "E200"
	CodePageNotRegistered = "E201"
	CodeHydrationRoot     = "E202"
	CodeHydrationPage     = "E203"
	CodeDuplicateRoute    = "E204"
	CodeScanFailed        = "E205"
	CodeBadSignature      = "E206"

	CodeConfigNotFound  = "E300"
	CodeConfigInvalid   = "E301"
	CodeStorageDriver   = "E302"
	CodeBuildFailed     = "E303"
	CodeUploadFailed    = "E304"
	CodeMigrationFailed = "E305"
	CodeCommandFailed   = "E306"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// API Errors (E100-E199)
	// ============================================

	CodeInvalidBody: {
		Kind:    KindValidation,
		Message: "Invalid request body",
		Detail:  "The request body failed schema validation. Each issue names the offending field.",
	},
	CodeMalformedJSON: {
		Kind:    KindValidation,
		Message: "Malformed JSON body",
		Detail:  "The request body could not be decoded as a JSON object.",
	},
	CodeMissingID: {
		Kind:    KindValidation,
		Message: "Missing id query parameter",
	},
	CodeNotFound: {
		Kind:    KindNotFound,
		Message: "Not found",
	},
	CodeInternal: {
		Kind:    KindInternal,
		Message: "Internal",
		Detail:  "An unexpected error occurred. The cause is logged server side and never returned to the client.",
	},

	// ============================================
	// Routing and Rendering Errors (E200-E299)
	// ============================================

	CodeRouteNotFound: {
		Kind:    KindNotFound,
		Message: "Not found",
	},
	CodePageNotRegistered: {
		Kind:    KindInternal,
		Message: "Page not registered",
		Detail:  "The route table references a page id that has no registered page function. Regenerate the route table with `vanext gen routes`.",
	},
	CodeHydrationRoot: {
		Kind:    KindInternal,
		Message: "Root element not found",
		Detail:  "Hydration requires a #root element rendered by the server.",
	},
	CodeHydrationPage: {
		Kind:    KindInternal,
		Message: "Page path not found in root element",
		Detail:  "The #root element carries no data-page attribute, so the client cannot pick a page.",
	},
	CodeDuplicateRoute: {
		Kind:    KindConfig,
		Message: "Duplicate route pattern",
		Detail:  "Two pages resolve to the same route pattern.",
	},
	CodeScanFailed: {
		Kind:    KindCLI,
		Message: "Failed to scan pages directory",
	},
	CodeBadSignature: {
		Kind:    KindCLI,
		Message: "Invalid page or layout signature",
	},

	// ============================================
	// Config and CLI Errors (E300-E399)
	// ============================================

	CodeConfigNotFound: {
		Kind:    KindConfig,
		Message: "Configuration file not found",
		Detail:  "No vanext.json or vanext.yaml was found in the project directory.",
	},
	CodeConfigInvalid: {
		Kind:    KindConfig,
		Message: "Invalid configuration",
	},
	CodeStorageDriver: {
		Kind:    KindConfig,
		Message: "Unsupported storage driver",
		Detail:  "Supported drivers are memory, postgres and sqlite.",
	},
	CodeBuildFailed: {
		Kind:    KindCLI,
		Message: "Client build failed",
	},
	CodeUploadFailed: {
		Kind:    KindCLI,
		Message: "Upload failed",
	},
	CodeMigrationFailed: {
		Kind:    KindCLI,
		Message: "Database migration failed",
	},
	CodeCommandFailed: {
		Kind:    KindCLI,
		Message: "Command failed",
	},
}
