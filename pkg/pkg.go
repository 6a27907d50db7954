// Package pkg holds the identity of the scad module: its name, version,
// and authors.
package pkg

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the embedded semantic version.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the command name. It also names the config and cache
	// directories.
	Name = "scad"
	// Description is the one-line summary shown in help output.
	Description = "Programmatic OpenSCAD source builder"
)

// AuthorInfo identifies one author.
type AuthorInfo struct {
	Name  string
	Email string
}

func (a AuthorInfo) String() string {
	if a.Email == "" {
		return a.Name
	}

	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Author lists the authors credited by [Banner].
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

// Banner returns the text printed by --version: the name and version on
// the first line, then one author per line.
func Banner() string {
	var b strings.Builder

	b.WriteString(Name + " " + Version())

	for _, a := range Author {
		b.WriteString("\n  " + a.String())
	}

	return b.String()
}
