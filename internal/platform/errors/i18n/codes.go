package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// They are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown     = "UNKNOWN"
	CodeInputFormat = "INPUT_FORMAT"
	CodeInputClosed = "INPUT_CLOSED"
)

// Codes lists every code the errors namespace must translate.
var Codes = []string{CodeUnknown, CodeInputFormat, CodeInputClosed}
