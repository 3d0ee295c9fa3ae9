// Copyright 2026 Advanced Micro Devices, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micalc

import "fmt"

// ErrKind is a closed set of error categories surfaced by the catalog,
// mapper, modifier engine, and query facade. It mirrors the byte-enum
// idiom used throughout the package for Matrix and Pattern.
type ErrKind byte

const (
	// ErrInvalidArch means an architecture name did not resolve to any
	// known architecture.
	ErrInvalidArch ErrKind = iota
	// ErrUnknownInstruction means a mnemonic is not defined for the
	// chosen architecture.
	ErrUnknownInstruction
	// ErrBadUsage means the combination of query arguments is malformed:
	// a missing required option, a mutually exclusive pair set together,
	// or a nonsensical combination.
	ErrBadUsage
	// ErrUnsupportedModifier means a modifier was set to a non-default
	// value on an instruction/matrix that does not support it.
	ErrUnsupportedModifier
	// ErrModifierOutOfRange means a supported modifier's value fell
	// outside its instruction-specific legal set.
	ErrModifierOutOfRange
	// ErrOutOfRangeCoordinate means a coordinate or (register, lane)
	// pair exceeded the instruction's descriptor bounds.
	ErrOutOfRangeCoordinate
	// ErrCatalogInconsistency means the construction-time round-trip
	// self-check failed for some descriptor. This is always fatal.
	ErrCatalogInconsistency
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidArch:
		return "InvalidArch"
	case ErrUnknownInstruction:
		return "UnknownInstruction"
	case ErrBadUsage:
		return "BadUsage"
	case ErrUnsupportedModifier:
		return "UnsupportedModifier"
	case ErrModifierOutOfRange:
		return "ModifierOutOfRange"
	case ErrOutOfRangeCoordinate:
		return "OutOfRangeCoordinate"
	case ErrCatalogInconsistency:
		return "CatalogInconsistency"
	default:
		return "UnknownError"
	}
}

// Error is the single error type returned by every exported function in
// this module. The caller can always recover the offending kind with
// errors.As, but messages are written to identify the offending
// parameter and its legal range, per spec's error handling policy.
type Error struct {
	Kind  ErrKind
	Param string
	Msg   string
}

func (e *Error) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Param, e.Msg)
}

func newErr(kind ErrKind, param, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Param: param, Msg: fmt.Sprintf(format, args...)}
}

// NewBadUsage reports a malformed combination of query arguments: a
// missing required option, a mutually exclusive pair set together, or a
// nonsensical combination. Exported for the query facade, which performs
// its own argument policing above the catalog/mapper layer.
func NewBadUsage(param, format string, args ...interface{}) error {
	return newErr(ErrBadUsage, param, format, args...)
}
