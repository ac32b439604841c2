// SPDX-License-Identifier: EPL-2.0

package click

import (
	"errors"
	"fmt"
)

var (
	ErrAmbiguousTemplates  = errors.New("reference clicks sound too similar")
	ErrUnclassifiableClick = errors.New("click cannot be classified")
	ErrUnknownDivision     = errors.New("unknown division")
	ErrDuplicateDivision   = errors.New("duplicate division")
	ErrMissingBarTemplate  = errors.New("no bar-line reference click")
)

// AmbiguousTemplatesError names two reference clicks sharing a zero-crossing
// count. The classifier cannot tell them apart, so a Library holding both is
// never built.
type AmbiguousTemplatesError struct {
	A, B      Template
	Crossings int
}

func (e *AmbiguousTemplatesError) Error() string {
	return fmt.Sprintf("%v: %s (%s) and %s (%s) both have %d zero crossings",
		ErrAmbiguousTemplates, e.A.Division, e.A.Name, e.B.Division, e.B.Name, e.Crossings)
}

func (e *AmbiguousTemplatesError) Unwrap() error { return ErrAmbiguousTemplates }
