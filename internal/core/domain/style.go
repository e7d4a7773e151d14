package domain

import "strings"

// TrailingComma controls trailing commas in multi-line literals.
type TrailingComma string

const (
	// TrailingCommaAll adds trailing commas wherever the syntax allows.
	TrailingCommaAll TrailingComma = "all"
	// TrailingCommaES5 adds trailing commas where valid in ES5 (arrays and objects).
	TrailingCommaES5 TrailingComma = "es5"
	// TrailingCommaNone never adds trailing commas.
	TrailingCommaNone TrailingComma = "none"
)

// Style holds the resolved project formatting rules applied to a rendered artifact.
type Style struct {
	PrintWidth     int
	TabWidth       int
	UseTabs        bool
	Semi           bool
	SingleQuote    bool
	BracketSpacing bool
	TrailingComma  TrailingComma
	// EndOfLine is "\n" or "\r\n".
	EndOfLine string
	// Source is the configuration file the style was read from.
	Source string
}

// DefaultStyle returns the formatting defaults used for options a configuration leaves unset.
func DefaultStyle() Style {
	return Style{
		PrintWidth:     80,
		TabWidth:       2,
		Semi:           true,
		BracketSpacing: true,
		TrailingComma:  TrailingCommaAll,
		EndOfLine:      "\n",
	}
}

// Indent returns one level of indentation.
func (s Style) Indent() string {
	if s.UseTabs {
		return "\t"
	}
	width := s.TabWidth
	if width <= 0 {
		width = 2
	}
	return strings.Repeat(" ", width)
}
