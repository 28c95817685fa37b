/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import (
	"errors"
	"fmt"
)

var ErrFrameStructureError = errors.New("frame structure error")

func (e *FrameStructureError) Error() string {
	return fmt.Sprintf("%v frame «%s»: %s: %s", e.FrameType, e.FrameID, e.Tag, e.Msg)
}

func (e *FrameStructureError) Unwrap() error {
	return ErrFrameStructureError
}
