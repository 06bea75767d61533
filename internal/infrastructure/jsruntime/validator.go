// Package jsruntime checks setup scripts with an embedded JavaScript engine.
package jsruntime

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/sobek"
)

// ErrEmptyScript is returned for a script with no code in it.
var ErrEmptyScript = errors.New("script is empty")

// Validator compiles scripts with sobek without running them.
type Validator struct {
	strict bool
}

// NewValidator returns a Validator. In strict mode scripts are compiled as "use strict".
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

// Validate reports a syntax error in source.
func (v *Validator) Validate(name, source string) error {
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("%s: %w", name, ErrEmptyScript)
	}
	if _, err := sobek.Compile(name, source, v.strict); err != nil {
		return fmt.Errorf("failed to compile %s: %w", name, err)
	}
	return nil
}
