// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package processor interprets token-swap instruction data and hands each
// decoded instruction to the pool logic registered for it.
package processor

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/tokenswap/tokenswap/packages/isc"
	"github.com/tokenswap/tokenswap/packages/swap/instruction"
	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
)

// Context is what a handler sees of the current invocation.
type Context struct {
	ProgramID solana.PublicKey
	Accounts  []*isc.AccountInfo
	log       isc.LogInterface
}

func (ctx *Context) Log() isc.LogInterface {
	return ctx.log
}

// OptionalAccount returns the account at index i, or nil if the caller did not pass it.
func (ctx *Context) OptionalAccount(i int) *isc.AccountInfo {
	if i < 0 || i >= len(ctx.Accounts) {
		return nil
	}
	return ctx.Accounts[i]
}

// Handler binds pool logic to one instruction kind.
type Handler struct {
	kind instruction.Kind
	fn   func(ctx *Context, ins instruction.Instruction) error
}

func (h Handler) Kind() instruction.Kind { return h.kind }

// Handle creates the handler for instructions of type T.
func Handle[T instruction.Instruction](fn func(ctx *Context, ins T) error) Handler {
	var zero T
	return Handler{
		kind: zero.Kind(),
		fn: func(ctx *Context, ins instruction.Instruction) error {
			return fn(ctx, ins.(T))
		},
	}
}

// Processor implements isc.Processor for the token-swap instruction set.
type Processor struct {
	log      isc.LogInterface
	handlers map[instruction.Kind]Handler
}

var _ isc.Processor = &Processor{}

// New creates a processor. Registering two handlers for the same kind panics.
func New(log isc.LogInterface, handlers ...Handler) *Processor {
	p := &Processor{
		log:      log,
		handlers: make(map[instruction.Kind]Handler, len(handlers)),
	}
	for _, h := range handlers {
		if _, ok := p.handlers[h.kind]; ok {
			panic(fmt.Sprintf("duplicate handler for instruction %s", h.kind))
		}
		p.handlers[h.kind] = h
	}
	return p
}

// Handles reports whether pool logic is registered for kind.
func (p *Processor) Handles(kind instruction.Kind) bool {
	_, ok := p.handlers[kind]
	return ok
}

func (p *Processor) Process(programID solana.PublicKey, accounts []*isc.AccountInfo, instructionData []byte) error {
	ins, err := instruction.Unpack(instructionData)
	if err != nil {
		return err
	}
	kind := ins.Kind()
	p.log.LogDebugf("Instruction: %s", kind)

	if len(accounts) < kind.MinAccounts() {
		return isc.ErrNotEnoughAccountKeys
	}
	if initIns, ok := ins.(instruction.Initialize); ok {
		if err := initIns.Fees.Validate(); err != nil {
			return err
		}
	}

	h, ok := p.handlers[kind]
	if !ok {
		p.log.LogDebugf("no handler registered for %s", kind)
		return swaperrors.InvalidInstruction
	}
	return h.fn(&Context{
		ProgramID: programID,
		Accounts:  accounts,
		log:       p.log,
	}, ins)
}
