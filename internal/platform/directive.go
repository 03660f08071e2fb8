// Package platform maps host operating systems to their install directives.
package platform

import (
	"sort"
	"strings"
)

// PackagesPlaceholder is the install-template element replaced by the
// directive's package list when the final command is built.
const PackagesPlaceholder = "$0"

// Directive describes how to set up and invoke one platform's package
// manager. Commands are argv slices, never shell strings, so package names
// survive untouched all the way to exec.
type Directive struct {
	// PackageManager is the executable that must resolve on PATH before
	// any step runs.
	PackageManager string `validate:"required"`

	// Setup refreshes the package manager's own index. A nil Setup means
	// the platform needs no refresh and the step is skipped entirely.
	Setup []string

	// Install is the install command template. Exactly one element is
	// PackagesPlaceholder; InstallArgv splices Packages in its place.
	Install []string `validate:"required,min=2"`

	// Packages lists the packages required on the platform, in install
	// order.
	Packages []string `validate:"required,min=1,dive,required"`
}

// directives is keyed by runtime.GOOS values. It is constant process-wide
// configuration: looked up, never mutated. mustDirectives enforces the
// table invariants once at startup.
var directives = mustDirectives(map[string]Directive{
	"linux": {
		PackageManager: "apt-get",
		Setup:          []string{"sudo", "apt-get", "update", "-qqy"},
		Install:        []string{"sudo", "apt-get", "install", PackagesPlaceholder},
		Packages:       []string{"jq", "protobuf-compiler", "cmake"},
	},
	"darwin": {
		PackageManager: "brew",
		Setup:          []string{"brew", "update"},
		Install:        []string{"brew", "install", PackagesPlaceholder},
		Packages:       []string{"protobuf", "cmake"},
	},
	"windows": {
		PackageManager: "choco",
		Setup:          nil,
		Install:        []string{"choco", "install", "-y", PackagesPlaceholder},
		Packages:       []string{"cmake", "protoc", "openssl"},
	},
})

// Lookup returns the install directive for a runtime.GOOS identifier.
func Lookup(goos string) (Directive, bool) {
	d, ok := directives[goos]
	return d, ok
}

// Platforms returns the sorted platform identifiers that have a directive.
func Platforms() []string {
	names := make([]string, 0, len(directives))
	for name := range directives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstallArgv builds the final install command by replacing the placeholder
// element with the package list, preserving package order.
func (d Directive) InstallArgv() []string {
	argv := make([]string, 0, len(d.Install)-1+len(d.Packages))
	for _, arg := range d.Install {
		if arg == PackagesPlaceholder {
			argv = append(argv, d.Packages...)
			continue
		}
		argv = append(argv, arg)
	}
	return argv
}

// Render joins an argv into the single-space command string used in logs.
func Render(argv []string) string {
	return strings.Join(argv, " ")
}
