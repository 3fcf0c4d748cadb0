package capture

// Config holds the options shared by every capture constructor.
// The zero value produces text output without timestamps.
type Config struct {
	// JSON selects the library's JSON encoder instead of its text encoder (default: false)
	JSON bool
	// Timestamps includes the time of each entry in the output (default: false)
	Timestamps bool
}
