// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package isc

import (
	"github.com/gagliardetto/solana-go"
)

// ProcessInstructionFunc is the calling convention of a program entry symbol.
// The host calls it once per instruction and interprets a non-nil error
// through ToProgramError.
type ProcessInstructionFunc func(programID solana.PublicKey, accounts []*AccountInfo, instructionData []byte) error

// Processor interprets instruction data on behalf of a program.
type Processor interface {
	Process(programID solana.PublicKey, accounts []*AccountInfo, instructionData []byte) error
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(programID solana.PublicKey, accounts []*AccountInfo, instructionData []byte) error

func (f ProcessorFunc) Process(programID solana.PublicKey, accounts []*AccountInfo, instructionData []byte) error {
	return f(programID, accounts, instructionData)
}
