package logging

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options selects the verbosity and encoding of the run's diagnostics.
// Diagnostics always go to stderr; stdout is reserved for command output.
type Options struct {
	Level  string
	Format string
}
