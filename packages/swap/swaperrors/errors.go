// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package swaperrors defines the errors a token-swap program reports to the host.
package swaperrors

import (
	"fmt"

	"github.com/tokenswap/tokenswap/packages/isc"
)

// SwapError is a program-defined error. Its value is the custom code seen by the host.
type SwapError uint32

const (
	AlreadyInUse SwapError = iota
	InvalidProgramAddress
	InvalidOwner
	InvalidOutputOwner
	ExpectedMint
	ExpectedAccount
	EmptySupply
	InvalidSupply
	InvalidDelegate
	InvalidInput
	IncorrectSwapAccount
	IncorrectPoolMint
	InvalidOutput
	CalculationFailure
	InvalidInstruction
	RepeatedMint
	ExceededSlippage
	InvalidCloseAuthority
	InvalidFreezeAuthority
	IncorrectFeeAccount
	ZeroTradingTokens
	FeeCalculationFailure
	ConversionFailure
	InvalidFee
	IncorrectTokenProgramID
	UnsupportedCurveType
	InvalidCurve
	UnsupportedCurveOperation

	numSwapErrors
)

type template struct {
	name    string
	message string
}

var templates = [numSwapErrors]template{
	AlreadyInUse:              {"AlreadyInUse", "Swap account already in use"},
	InvalidProgramAddress:     {"InvalidProgramAddress", "Invalid program address generated from nonce and key"},
	InvalidOwner:              {"InvalidOwner", "Input account owner is not the program address"},
	InvalidOutputOwner:        {"InvalidOutputOwner", "Output pool account owner cannot be the program address"},
	ExpectedMint:              {"ExpectedMint", "Deserialized account is not an SPL Token mint"},
	ExpectedAccount:           {"ExpectedAccount", "Deserialized account is not an SPL Token account"},
	EmptySupply:               {"EmptySupply", "Input token account empty"},
	InvalidSupply:             {"InvalidSupply", "Pool token mint has a non-zero supply"},
	InvalidDelegate:           {"InvalidDelegate", "Token account has a delegate"},
	InvalidInput:              {"InvalidInput", "InvalidInput"},
	IncorrectSwapAccount:      {"IncorrectSwapAccount", "Address of the provided swap token account is incorrect"},
	IncorrectPoolMint:         {"IncorrectPoolMint", "Address of the provided pool token mint is incorrect"},
	InvalidOutput:             {"InvalidOutput", "InvalidOutput"},
	CalculationFailure:        {"CalculationFailure", "CalculationFailure"},
	InvalidInstruction:        {"InvalidInstruction", "InvalidInstruction"},
	RepeatedMint:              {"RepeatedMint", "Swap input token accounts have the same mint"},
	ExceededSlippage:          {"ExceededSlippage", "Swap instruction exceeds desired slippage limit"},
	InvalidCloseAuthority:     {"InvalidCloseAuthority", "Token account has a close authority"},
	InvalidFreezeAuthority:    {"InvalidFreezeAuthority", "Pool token mint has a freeze authority"},
	IncorrectFeeAccount:       {"IncorrectFeeAccount", "Pool fee token account incorrect"},
	ZeroTradingTokens:         {"ZeroTradingTokens", "Given pool token amount results in zero trading tokens"},
	FeeCalculationFailure:     {"FeeCalculationFailure", "Fee calculation failed due to overflow, underflow, or unexpected 0"},
	ConversionFailure:         {"ConversionFailure", "Conversion to or from u64 failed"},
	InvalidFee:                {"InvalidFee", "The provided fee does not match the program owner's constraints"},
	IncorrectTokenProgramID:   {"IncorrectTokenProgramId", "The provided token program does not match the token program expected by the swap"},
	UnsupportedCurveType:      {"UnsupportedCurveType", "The provided curve type is not supported by the program owner"},
	InvalidCurve:              {"InvalidCurve", "The provided curve parameters are invalid"},
	UnsupportedCurveOperation: {"UnsupportedCurveOperation", "The operation cannot be performed on the given curve"},
}

func (e SwapError) valid() bool { return e < numSwapErrors }

// Name is the classification of the error, e.g. "InvalidInstruction".
func (e SwapError) Name() string {
	if !e.valid() {
		return fmt.Sprintf("SwapError(%d)", uint32(e))
	}
	return templates[e].name
}

func (e SwapError) Error() string {
	if !e.valid() {
		return e.Name()
	}
	return templates[e].message
}

// Print writes the error on the diagnostic channel.
func (e SwapError) Print(log isc.LogInterface) {
	log.LogErrorf("Error: %s", e.Error())
}

// ProgramError converts the error to its host representation.
func (e SwapError) ProgramError() isc.ProgramError {
	return isc.Custom(uint32(e))
}

// Decode resolves a custom host code back to its SwapError.
func Decode(code uint32) (isc.PrintableError, bool) {
	e := SwapError(code)
	if !e.valid() {
		return nil, false
	}
	return e, true
}

// All lists every SwapError in code order.
func All() []SwapError {
	ret := make([]SwapError, numSwapErrors)
	for i := range ret {
		ret[i] = SwapError(i)
	}
	return ret
}
