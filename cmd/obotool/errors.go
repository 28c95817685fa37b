/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"errors"
	"fmt"
)

var ErrDocumentsDifferError = errors.New("documents differ")

func ErrDocumentsDiffer(n int) error {
	return fmt.Errorf("%w: %d differences", ErrDocumentsDifferError, n)
}

var ErrInvalidConfigError = errors.New("invalid config")

func ErrInvalidConfig(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfigError, source, err)
}
