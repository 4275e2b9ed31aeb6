// Package testhost is a minimal in-process host for exercising program
// entrypoints in tests: it resolves the target program, turns an
// instruction into the entry call and reports the result the way a host does.
package testhost

import (
	"github.com/gagliardetto/solana-go"

	"github.com/tokenswap/tokenswap/packages/isc"
)

type Host struct {
	programs map[solana.PublicKey]isc.ProcessInstructionFunc
}

func New() *Host {
	return &Host{programs: make(map[solana.PublicKey]isc.ProcessInstructionFunc)}
}

// Deploy registers the entry symbol of a program.
func (h *Host) Deploy(programID solana.PublicKey, entry isc.ProcessInstructionFunc) {
	h.programs[programID] = entry
}

type Result struct {
	// Err is what the program returned, untouched.
	Err error
	// Code is Err in the host representation, 0 on success.
	Code isc.ProgramError
}

func (r Result) OK() bool { return r.Err == nil }

// Invoke runs a single instruction with fresh account handles built from its metas.
func (h *Host) Invoke(ins solana.Instruction) Result {
	data, err := ins.Data()
	if err != nil {
		return Result{Err: isc.ErrInvalidInstructionData, Code: isc.ErrInvalidInstructionData}
	}
	return h.Call(ins.ProgramID(), isc.AccountInfosFromMetas(ins.Accounts()), data)
}

// Call invokes the program entry with the given handles and data.
func (h *Host) Call(programID solana.PublicKey, accounts []*isc.AccountInfo, data []byte) Result {
	entry, ok := h.programs[programID]
	if !ok {
		return Result{Err: isc.ErrIncorrectProgramID, Code: isc.ErrIncorrectProgramID}
	}
	err := entry(programID, accounts, data)
	return Result{Err: err, Code: isc.ToProgramError(err)}
}
