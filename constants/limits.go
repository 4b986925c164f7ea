package constants

// Default session and batch caps. Deployments override these through
// configuration; the values mirror the product defaults.
const (
	DefaultMaxJobDescriptions = 10
	DefaultMaxResumes         = 25
	DefaultMaxBatchFiles      = 100

	// DefaultChunkSize is how many documents are parsed concurrently
	// before the orchestrator pauses between chunks.
	DefaultChunkSize = 10
)

// DefaultCountryCode is prepended to bare 10-digit phone numbers.
const DefaultCountryCode = "+91"
