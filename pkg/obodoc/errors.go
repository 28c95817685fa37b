/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrFrameMerge(f, other *Frame) error {
	return ErrInvalid("can not merge %v frame «%s» into %v frame «%s»", other.Type, other.ID, f.Type, f.ID)
}

func ErrMissedFrameID(t FrameType) error {
	return ErrInvalid("%v frame has no id", t)
}

func ErrDocumentNotFound(key string) error {
	return ErrNotFound("document «%s»", key)
}
