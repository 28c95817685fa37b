/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xrefexp

import (
	"errors"
	"fmt"

	"github.com/voedger/oboformat/pkg/obodoc"
)

var ErrInvalidRuleError = errors.New("invalid xref rule")

func ErrInvalidRule(c *obodoc.Clause, want int) error {
	return fmt.Errorf("%w: «%s: %v» expects %d values", ErrInvalidRuleError, c.TagName(), c.Tuple(), want)
}
