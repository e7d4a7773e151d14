package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "fileslist.yaml"

	// DefaultGeneratorName is printed in the artifact banner when the config does not name one.
	DefaultGeneratorName = "fileslist"

	// DefaultExportName is the identifier the artifact declares and exports.
	DefaultExportName = "FilesList"

	// DefaultDescription is the free-text line of the artifact banner.
	DefaultDescription = "This file lists all files matching the configured patterns."

	// TempFilePattern is the pattern for staging files created next to the output.
	// The output's base name is prepended.
	TempFilePattern = ".tmp-*"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SkippedDirs are directory names never descended into while scanning or watching.
var SkippedDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}
