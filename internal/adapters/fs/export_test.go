package fs

// NewStoreWithRename builds a Store whose final rename step is replaced, for crash-safety tests.
func NewStoreWithRename(rename func(oldpath, newpath string) error) *Store {
	return &Store{rename: rename}
}
