package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore on the local file system.
type Store struct {
	rename func(oldpath, newpath string) error
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{rename: os.Rename}
}

// Read returns the content of the file at path.
func (s *Store) Read(path string) ([]byte, error) {
	//nolint:gosec // Path comes from the project configuration
	return os.ReadFile(path)
}

// Write stages data in a temporary file next to path and renames it into place.
// An existing file keeps its permission bits.
func (s *Store) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	perm := iofs.FileMode(domain.FilePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+domain.TempFilePattern)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmpFile.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeAndClose(tmpFile, data, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	if err := s.rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	committed = true

	// The rename is durable only once the directory entry is flushed.
	syncDir(dir)
	return nil
}

func writeAndClose(f *os.File, data []byte, perm iofs.FileMode) error {
	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Chmod(perm); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	return f.Close()
}

func syncDir(dir string) {
	d, err := os.Open(dir) //nolint:gosec // Directory of a configured output path
	if err != nil {
		return
	}
	defer d.Close() //nolint:errcheck // Best effort close in defer

	_ = d.Sync()
}
