//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the semantic version of the aoc module embedded at build
// time.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier. It appears in help
	// text and default config paths.
	Name = "aoc"
	// Description is a short summary of the project used in help output.
	Description = "Daily puzzle solutions built on parser combinators"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
