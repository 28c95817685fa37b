/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboloader

import "errors"

var ErrInvalidOptionsError = errors.New("invalid loader options")
