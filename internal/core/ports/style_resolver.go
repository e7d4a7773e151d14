package ports

import "go.trai.ch/fileslist/internal/core/domain"

// StyleResolver finds the formatting rules that apply to a generated file.
//
//go:generate go run go.uber.org/mock/mockgen -source=style_resolver.go -destination=mocks/mock_style_resolver.go -package=mocks
type StyleResolver interface {
	// Resolve returns the style for the file at path.
	// It returns nil, nil when no style configuration applies.
	Resolve(path string) (*domain.Style, error)
}
