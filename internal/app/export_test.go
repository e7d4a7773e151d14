package app

import "go.trai.ch/fileslist/internal/core/domain"

// WatchRoots exposes watch root selection.
func WatchRoots(jobs []domain.Job) []string {
	return watchRoots(jobs)
}

// IgnoredByOutputFilter reports whether a watch event for path is dropped.
func IgnoredByOutputFilter(jobs []domain.Job, path string) bool {
	return newOutputFilter(jobs).ignored(path)
}
