/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"errors"

	"github.com/voedger/oboformat/pkg/owl"
)

var ErrTranslationError = errors.New("untranslatable axiom")

// TranslationError is an axiom which has no OBO form
type TranslationError struct {
	Axiom owl.Axiom
	Msg   string
}

func (e *TranslationError) Error() string {
	return ErrTranslationError.Error() + " " + e.Axiom.String() + ": " + e.Msg
}

func (e *TranslationError) Unwrap() error {
	return ErrTranslationError
}
