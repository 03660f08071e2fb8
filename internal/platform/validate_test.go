package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validDirective() Directive {
	return Directive{
		PackageManager: "apt-get",
		Setup:          []string{"sudo", "apt-get", "update", "-qqy"},
		Install:        []string{"sudo", "apt-get", "install", PackagesPlaceholder},
		Packages:       []string{"jq", "cmake"},
	}
}

func TestValidateDirective(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed directive", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validateDirective(validDirective()))
	})

	t.Run("accepts an empty setup command", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.Setup = nil
		require.NoError(t, validateDirective(d))
	})

	t.Run("rejects a missing package manager", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.PackageManager = ""
		require.Error(t, validateDirective(d))
	})

	t.Run("rejects an empty package list", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.Packages = nil
		require.Error(t, validateDirective(d))
	})

	t.Run("rejects an empty package name", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.Packages = []string{"jq", ""}
		require.Error(t, validateDirective(d))
	})

	t.Run("rejects a template without a placeholder", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.Install = []string{"sudo", "apt-get", "install"}
		err := validateDirective(d)
		require.Error(t, err)
		require.Contains(t, err.Error(), "exactly one")
	})

	t.Run("rejects a template with two placeholders", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.Install = []string{"sudo", "apt-get", "install", PackagesPlaceholder, PackagesPlaceholder}
		err := validateDirective(d)
		require.Error(t, err)
		require.Contains(t, err.Error(), "exactly one")
	})

	t.Run("rejects a placeholder in setup", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.Setup = []string{"sudo", "apt-get", "update", PackagesPlaceholder}
		require.Error(t, validateDirective(d))
	})

	t.Run("rejects package names with whitespace", func(t *testing.T) {
		t.Parallel()
		d := validDirective()
		d.Packages = []string{"jq", "lib foo"}
		err := validateDirective(d)
		require.Error(t, err)
		require.Contains(t, err.Error(), "whitespace")
	})
}

func TestMustDirectivesPanicsOnInvalidTable(t *testing.T) {
	t.Parallel()

	bad := map[string]Directive{
		"linux": {PackageManager: "apt-get", Install: []string{"apt-get", "install"}, Packages: []string{"jq"}},
	}

	require.Panics(t, func() {
		mustDirectives(bad)
	})
}

func TestBuiltinTableSatisfiesInvariants(t *testing.T) {
	t.Parallel()

	for _, goos := range Platforms() {
		d, ok := Lookup(goos)
		require.True(t, ok)
		require.NoError(t, validateDirective(d), "platform %s", goos)
	}
}
