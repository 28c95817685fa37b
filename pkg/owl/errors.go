/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

import (
	"errors"
	"fmt"
)

var ErrSyntaxError = errors.New("functional syntax error")

var ErrUnsupportedError = errors.New("unsupported construct")

func ErrUnsupported(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedError, fmt.Sprintf(msg, args...))
}

func ErrSyntax(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntaxError, fmt.Sprintf(msg, args...))
}
