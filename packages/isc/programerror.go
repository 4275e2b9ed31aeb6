// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package isc

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

// ProgramError is the generic error representation understood by the host.
// Builtin kinds live in the upper 32 bits, custom program codes in the lower 32.
type ProgramError uint64

const builtinBitShift = 32

func builtin(n uint64) ProgramError { return ProgramError(n << builtinBitShift) }

var (
	ErrCustomZero                = builtin(1)
	ErrInvalidArgument           = builtin(2)
	ErrInvalidInstructionData    = builtin(3)
	ErrInvalidAccountData        = builtin(4)
	ErrAccountDataTooSmall       = builtin(5)
	ErrInsufficientFunds         = builtin(6)
	ErrIncorrectProgramID        = builtin(7)
	ErrMissingRequiredSignature  = builtin(8)
	ErrAccountAlreadyInitialized = builtin(9)
	ErrUninitializedAccount      = builtin(10)
	ErrNotEnoughAccountKeys      = builtin(11)
	ErrAccountBorrowFailed       = builtin(12)
	ErrMaxSeedLengthExceeded     = builtin(13)
	ErrInvalidSeeds              = builtin(14)
)

var builtinNames = map[ProgramError]string{
	ErrInvalidArgument:           "InvalidArgument",
	ErrInvalidInstructionData:    "InvalidInstructionData",
	ErrInvalidAccountData:        "InvalidAccountData",
	ErrAccountDataTooSmall:       "AccountDataTooSmall",
	ErrInsufficientFunds:         "InsufficientFunds",
	ErrIncorrectProgramID:        "IncorrectProgramId",
	ErrMissingRequiredSignature:  "MissingRequiredSignature",
	ErrAccountAlreadyInitialized: "AccountAlreadyInitialized",
	ErrUninitializedAccount:      "UninitializedAccount",
	ErrNotEnoughAccountKeys:      "NotEnoughAccountKeys",
	ErrAccountBorrowFailed:       "AccountBorrowFailed",
	ErrMaxSeedLengthExceeded:     "MaxSeedLengthExceeded",
	ErrInvalidSeeds:              "InvalidSeeds",
}

// Custom returns the host representation of a program-defined error code.
func Custom(code uint32) ProgramError {
	if code == 0 {
		return ErrCustomZero
	}
	return ProgramError(code)
}

// CustomCode reports the program-defined code carried by e, if any.
func (e ProgramError) CustomCode() (uint32, bool) {
	if e == ErrCustomZero {
		return 0, true
	}
	if e>>builtinBitShift == 0 && e != 0 {
		return uint32(e), true
	}
	return 0, false
}

// Name is the classification of a builtin error, or "Custom" for program codes.
func (e ProgramError) Name() string {
	if _, ok := e.CustomCode(); ok {
		return "Custom"
	}
	if name, ok := builtinNames[e]; ok {
		return name
	}
	return "Unknown"
}

func (e ProgramError) Error() string {
	if code, ok := e.CustomCode(); ok {
		return fmt.Sprintf("Custom(%d)", code)
	}
	return e.Name()
}

// ProgramErrorConverter is implemented by typed program errors that know
// their host representation.
type ProgramErrorConverter interface {
	error
	ProgramError() ProgramError
}

// ToProgramError converts err into the representation returned to the host.
// A nil error has no representation and yields 0.
func ToProgramError(err error) ProgramError {
	if err == nil {
		return 0
	}
	var conv ProgramErrorConverter
	if ierrors.As(err, &conv) {
		return conv.ProgramError()
	}
	var pe ProgramError
	if ierrors.As(err, &pe) {
		return pe
	}
	return ErrInvalidArgument
}

// PrintableError is a typed program error able to describe itself on the
// diagnostic channel.
type PrintableError interface {
	error
	Print(log LogInterface)
}

// CustomErrorDecoder resolves a custom code to the program's typed error.
type CustomErrorDecoder func(code uint32) (PrintableError, bool)

// PrintProgramError writes exactly one diagnostic line describing err.
// Custom codes are resolved with decode so the program's own message is shown.
func PrintProgramError(log LogInterface, err error, decode CustomErrorDecoder) {
	var printable PrintableError
	if ierrors.As(err, &printable) {
		printable.Print(log)
		return
	}
	pe := ToProgramError(err)
	if code, ok := pe.CustomCode(); ok {
		if decode != nil {
			if typed, ok := decode(code); ok {
				typed.Print(log)
				return
			}
		}
		log.LogErrorf("Error: Unknown")
		return
	}
	log.LogErrorf("Error: %s", pe.Name())
}
