package veil

import "fmt"

// Error types

// InvalidInputError is returned when an operation is handed input it cannot
// work with. Nothing has been modified when it is returned.
type InvalidInputError struct {
	ErrorDesc string
}

func (e *InvalidInputError) Error() string {
	if len(e.ErrorDesc) > 0 {
		return e.ErrorDesc
	}
	return "The provided input is invalid."
}

// CapacityError is returned when a payload needs more bits than the canvas has
// room for. The canvas is never modified when it is returned.
type CapacityError struct {
	NeededBits    int64
	AvailableBits int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("There is not enough space available to store the provided message within the provided image: "+
		"%d bits are needed, but only %d are available.", e.NeededBits, e.AvailableBits)
}

// NoMessageError is returned when extraction finds no valid payload frame. A
// carrier that was never embedded into is an expected outcome, not a fault.
type NoMessageError struct{}

func (e *NoMessageError) Error() string {
	return "The provided image does not contain a hidden message."
}
