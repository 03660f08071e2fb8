package platform

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// mustDirectives verifies every directive in the table and panics on the
// first violation. The table is hard-coded, so a failure here is a
// programming error caught on the very first run.
func mustDirectives(table map[string]Directive) map[string]Directive {
	for goos, d := range table {
		if err := validateDirective(d); err != nil {
			panic(fmt.Sprintf("platform: invalid directive for %s: %v", goos, err))
		}
	}
	return table
}

// validateDirective performs schema and cross-field validation on a single
// directive.
func validateDirective(d Directive) error {
	if err := validatorInstance().Struct(d); err != nil {
		return err
	}

	placeholders := 0
	for _, arg := range d.Install {
		if arg == PackagesPlaceholder {
			placeholders++
		}
	}
	if placeholders != 1 {
		return fmt.Errorf("install template must contain exactly one %s element, found %d", PackagesPlaceholder, placeholders)
	}

	for _, arg := range d.Setup {
		if arg == PackagesPlaceholder {
			return fmt.Errorf("setup command must not contain %s", PackagesPlaceholder)
		}
	}

	for _, pkg := range d.Packages {
		if strings.ContainsAny(pkg, " \t") {
			return fmt.Errorf("package name %q contains whitespace", pkg)
		}
	}

	return nil
}
