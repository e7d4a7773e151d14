package ports

import (
	"context"

	"go.trai.ch/fileslist/internal/core/domain"
)

// FileScanner enumerates files under a base directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type FileScanner interface {
	// Scan returns the slash-separated paths, relative to baseDir, of every file matching
	// at least one pattern and no ignore pattern. The result is sorted and free of duplicates.
	Scan(ctx context.Context, baseDir string, patterns, ignores []string) (domain.FileList, error)
}
