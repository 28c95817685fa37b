/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboconv

import "github.com/voedger/oboformat/pkg/obodoc"

// DiagnosticKind classifies conversion diagnostics
type DiagnosticKind uint8

const (
	DiagnosticKind_null DiagnosticKind = iota
	// DiagnosticKind_Duplicate is a clause or axiom which repeats already converted content
	DiagnosticKind_Duplicate
	// DiagnosticKind_Untranslatable is an axiom without an OBO form
	DiagnosticKind_Untranslatable
	// DiagnosticKind_Invalid is a clause which can not be converted, e.g. a malformed template
	DiagnosticKind_Invalid
	DiagnosticKind_Count
)

// Diagnostic is a non-fatal conversion issue
type Diagnostic struct {
	Kind    DiagnosticKind
	FrameID string
	Tag     string
	Message string
}

// DuplicateHandler audits duplicate clauses met during conversion.
// Returning false vetoes the clause
type DuplicateHandler interface {
	HandleDuplicateClause(frame *obodoc.Frame, clause *obodoc.Clause) bool
}

// DuplicateHandlerFunc adapts a function to DuplicateHandler
type DuplicateHandlerFunc func(frame *obodoc.Frame, clause *obodoc.Clause) bool

func (f DuplicateHandlerFunc) HandleDuplicateClause(frame *obodoc.Frame, clause *obodoc.Clause) bool {
	return f(frame, clause)
}
