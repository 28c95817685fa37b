/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package manchester

import (
	"errors"
	"fmt"
)

var ErrSyntaxError = errors.New("manchester syntax error")

var ErrUnresolvedError = errors.New("unresolved name")

var ErrUnboundVariableError = errors.New("unbound variable")

func ErrSyntax(err error) error {
	return fmt.Errorf("%w: %w", ErrSyntaxError, err)
}

func ErrUnresolved(name string) error {
	return fmt.Errorf("%w: «%s»", ErrUnresolvedError, name)
}

func ErrUnboundVariable(name string) error {
	return fmt.Errorf("%w: ?%s", ErrUnboundVariableError, name)
}
