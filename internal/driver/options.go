package driver

// Options configure a pipeline run.
type Options struct {
	MaxDiagnostics int
	EnableTimings  bool
	// Cache, if set, serves and stores token streams.
	Cache *TokenCache
	// Jobs limits parallel files in ProcessDir; <= 0 means GOMAXPROCS.
	Jobs     int
	Progress ProgressFunc
}
