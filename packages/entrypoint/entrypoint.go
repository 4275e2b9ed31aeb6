// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package entrypoint is the boundary the host calls into: it hands every
// instruction to the processor and reports failures on the diagnostic channel.
package entrypoint

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iotaledger/hive.go/log"

	"github.com/tokenswap/tokenswap/packages/isc"
	"github.com/tokenswap/tokenswap/packages/swap/processor"
	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
)

const LoggerName = "tokenswap"

type Entrypoint struct {
	processor isc.Processor
	log       isc.LogInterface
}

// New binds an entrypoint to its processor and the host diagnostic channel.
func New(p isc.Processor, logger isc.LogInterface) *Entrypoint {
	return &Entrypoint{processor: p, log: logger}
}

// NewDefault creates the token-swap entrypoint logging through a hive.go logger.
func NewDefault(handlers ...processor.Handler) *Entrypoint {
	logger := log.NewLogger(log.WithName(LoggerName))
	return New(processor.New(logger, handlers...), logger)
}

var _ isc.ProcessInstructionFunc = (&Entrypoint{}).ProcessInstruction

// ProcessInstruction forwards the invocation to the processor exactly once.
// A failure is printed once and returned unchanged.
func (e *Entrypoint) ProcessInstruction(programID solana.PublicKey, accounts []*isc.AccountInfo, instructionData []byte) (err error) {
	defer func() {
		if err != nil {
			isc.PrintProgramError(e.log, err, swaperrors.Decode)
		}
	}()
	return e.processor.Process(programID, accounts, instructionData)
}
