// SPDX-License-Identifier: MIT

// Package partition: sentinel errors and the contextual Error type.
// Sentinels are returned wrapped; callers match them with errors.Is and
// recover the triggering contribution/isomer/temperature with errors.As.

package partition

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySet indicates an isomer set with no isomers.
	ErrEmptySet = errors.New("partition: isomer set is empty")

	// ErrEmptyGrid indicates a temperature grid with no points.
	ErrEmptyGrid = errors.New("partition: temperature grid is empty")

	// ErrGridOrder indicates temperatures that are not strictly increasing.
	ErrGridOrder = errors.New("partition: temperatures must be strictly increasing")

	// ErrNegativeTemperature indicates a temperature below absolute zero or non-finite.
	ErrNegativeTemperature = errors.New("partition: temperature must be finite and >= 0")

	// ErrInvalidStep indicates a non-positive or non-finite grid step.
	ErrInvalidStep = errors.New("partition: grid step must be finite and > 0")

	// ErrGridTooLarge indicates a Span with more than MaxGridPoints temperatures.
	ErrGridTooLarge = errors.New("partition: temperature grid too large")

	// ErrNoContributions indicates that no contribution was registered.
	ErrNoContributions = errors.New("partition: at least one contribution is required")

	// ErrNilContribution indicates a nil entry in the contribution list.
	ErrNilContribution = errors.New("partition: nil contribution")

	// ErrDimensionMismatch indicates a contribution table whose shape differs
	// from (isomers × temperatures).
	ErrDimensionMismatch = errors.New("partition: contribution table shape mismatch")

	// ErrInvalidFrequency indicates a vibrational frequency that is not finite and > 0.
	ErrInvalidFrequency = errors.New("partition: frequencies must be finite and > 0")

	// ErrInvalidMultiplicity indicates a spin multiplicity below 1.
	ErrInvalidMultiplicity = errors.New("partition: spin multiplicity must be >= 1")

	// ErrInvalidSymmetry indicates a rotational symmetry number below 1.
	ErrInvalidSymmetry = errors.New("partition: symmetry number must be >= 1")

	// ErrInvalidMoments indicates a principal moment of inertia that is negative or non-finite.
	ErrInvalidMoments = errors.New("partition: moments of inertia must be finite and >= 0")

	// ErrNaNInf indicates a non-finite value produced or supplied where a
	// finite one is required.
	ErrNaNInf = errors.New("partition: NaN or Inf encountered")
)

// NoIsomer marks an Error that is not tied to a single isomer.
const NoIsomer = -1

// Error reports which contribution, isomer and temperature triggered a
// failure. Isomer is NoIsomer and HasTemperature is false when the failure
// is not specific to them.
type Error struct {
	Contribution   string
	Isomer         int
	Temperature    float64
	HasTemperature bool
	Err            error
}

// Error implements error.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("partition")
	if e.Contribution != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Contribution)
	}
	if e.Isomer != NoIsomer {
		fmt.Fprintf(&sb, ": isomer %d", e.Isomer)
	}
	if e.HasTemperature {
		fmt.Fprintf(&sb, " at T=%g K", e.Temperature)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())

	return sb.String()
}

// Unwrap exposes the underlying sentinel.
func (e *Error) Unwrap() error { return e.Err }

func isomerError(contribution string, isomer int, err error) error {
	return &Error{Contribution: contribution, Isomer: isomer, Err: err}
}

func pointError(contribution string, isomer int, temperature float64, err error) error {
	return &Error{Contribution: contribution, Isomer: isomer, Temperature: temperature, HasTemperature: true, Err: err}
}
