package ports

// ArtifactStore reads and replaces generated artifacts on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact_store.go -destination=mocks/mock_artifact_store.go -package=mocks
type ArtifactStore interface {
	// Read returns the current content of the artifact at path.
	Read(path string) ([]byte, error)

	// Write replaces the artifact at path atomically. A reader never observes a
	// partially written file, and on failure the previous content stays in place.
	Write(path string, data []byte) error
}
