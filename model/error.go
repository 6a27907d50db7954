package model

import "github.com/ardnew/scad/lang"

// Error is the structured error type shared with package lang.
type Error = lang.Error

// Predefined errors (sentinel values).
var (
	ErrReadInput         = lang.NewError("failed to read model")
	ErrDecode            = lang.NewError("failed to decode model")
	ErrInvalidNode       = lang.NewError("invalid model node")
	ErrUndefinedVariable = lang.NewError("undefined variable")
	ErrExprCompile       = lang.NewError("failed to compile expression")
	ErrExprEvaluate      = lang.NewError("failed to evaluate expression")
)
