package ports

// DefaultHandlerDetector answers platform questions about the default handler (browser).
// Implementations are expected to be cheap, synchronous and side-effect free.
type DefaultHandlerDetector interface {
	// SupportsDefaultHandlerConfiguration reports whether the platform lets the user
	// pick a default handler at all.
	SupportsDefaultHandlerConfiguration() (bool, error)

	// IsCurrentDefaultHandler reports whether this application is the configured default.
	// It is only meaningful when SupportsDefaultHandlerConfiguration is true.
	IsCurrentDefaultHandler() (bool, error)
}
