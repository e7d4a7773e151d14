package domain

import "go.trai.ch/zerr"

var (
	// ErrNoJobsDefined is returned when the configuration file declares no generation jobs.
	ErrNoJobsDefined = zerr.New("no jobs defined")

	// ErrJobNotFound is returned when a requested job is not declared in the configuration.
	ErrJobNotFound = zerr.New("job not found")

	// ErrMissingOutput is returned when a job does not declare an output path.
	ErrMissingOutput = zerr.New("job output path is required")

	// ErrMissingPattern is returned when a job declares no glob pattern.
	ErrMissingPattern = zerr.New("job requires at least one pattern")

	// ErrInvalidPattern is returned when a glob pattern cannot be parsed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrInvalidExportName is returned when the export identifier is not a valid identifier.
	ErrInvalidExportName = zerr.New("export name must be a valid identifier")

	// ErrDuplicateOutput is returned when two jobs write to the same output path.
	ErrDuplicateOutput = zerr.New("duplicate output path")

	// ErrInvalidDebounce is returned when the watch debounce window cannot be parsed.
	ErrInvalidDebounce = zerr.New("invalid watch debounce duration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file is found walking up from the working directory.
	ErrConfigNotFound = zerr.New("could not find fileslist.yaml")

	// ErrBaseDirNotFound is returned when a job's base directory is missing or not a directory.
	ErrBaseDirNotFound = zerr.New("base directory not found")

	// ErrScanFailed is returned when enumerating matching files fails.
	ErrScanFailed = zerr.New("failed to scan files")

	// ErrArtifactWriteFailed is returned when the generated artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write generated artifact")

	// ErrStyleParseFailed is returned when a style configuration file cannot be parsed.
	ErrStyleParseFailed = zerr.New("failed to parse style configuration")

	// ErrSignFailed is returned when the rendered artifact cannot be signed.
	ErrSignFailed = zerr.New("failed to sign generated artifact")

	// ErrArtifactOutOfDate is returned by check when an artifact is missing, stale or tampered.
	ErrArtifactOutOfDate = zerr.New("generated artifacts are out of date")

	// ErrCommandFailed is returned when the consumer build command exits unsuccessfully.
	ErrCommandFailed = zerr.New("build command failed")

	// ErrGenerationFailed is returned when a generation pass fails.
	ErrGenerationFailed = zerr.New("generation failed")

	// ErrInvalidLogFormat is returned when the requested log format is unknown.
	ErrInvalidLogFormat = zerr.New("log format must be pretty or json")

	// ErrWatchStreamClosed is returned when the watcher stops delivering events before the session ends.
	ErrWatchStreamClosed = zerr.New("watch event stream closed unexpectedly")

	// ErrWatchFailed is returned when the watch session cannot be started.
	ErrWatchFailed = zerr.New("failed to start watch session")
)
