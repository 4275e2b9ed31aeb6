// Package instruction decodes and encodes the instructions understood by the
// token-swap program.
//
// An instruction is one tag byte followed by a fixed-size, little-endian
// payload in borsh layout. Bytes past the payload are ignored.
package instruction

import (
	"fmt"

	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
	"github.com/tokenswap/tokenswap/packages/util"
)

// Kind is the tag byte of an instruction.
type Kind uint8

const (
	KindInitialize Kind = iota
	KindSwap
	KindDepositAllTokenTypes
	KindWithdrawAllTokenTypes
	KindDepositSingleTokenTypeExactAmountIn
	KindWithdrawSingleTokenTypeExactAmountOut

	numKinds
)

type kindInfo struct {
	name        string
	payloadSize int
	minAccounts int
	decode      func(payload []byte, size int) (Instruction, error)
}

var kinds = [numKinds]kindInfo{
	KindInitialize:                          {"Initialize", 1 + FeesSize + 1 + CurveParametersSize, 8, decode[Initialize]},
	KindSwap:                                {"Swap", 16, 10, decode[Swap]},
	KindDepositAllTokenTypes:                {"DepositAllTokenTypes", 24, 10, decode[DepositAllTokenTypes]},
	KindWithdrawAllTokenTypes:               {"WithdrawAllTokenTypes", 24, 11, decode[WithdrawAllTokenTypes]},
	KindDepositSingleTokenTypeExactAmountIn: {"DepositSingleTokenTypeExactAmountIn", 16, 9, decode[DepositSingleTokenTypeExactAmountIn]},
	KindWithdrawSingleTokenTypeExactAmountOut: {
		"WithdrawSingleTokenTypeExactAmountOut", 16, 10, decode[WithdrawSingleTokenTypeExactAmountOut],
	},
}

func (k Kind) Valid() bool { return k < numKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// PayloadSize is the number of bytes following the tag.
func (k Kind) PayloadSize() int { return kinds[k].payloadSize }

// MinAccounts is the number of accounts the instruction cannot do without.
func (k Kind) MinAccounts() int { return kinds[k].minAccounts }

// Kinds lists every instruction kind in tag order.
func Kinds() []Kind {
	ret := make([]Kind, numKinds)
	for i := range ret {
		ret[i] = Kind(i)
	}
	return ret
}

// KindFromString parses an instruction name.
func KindFromString(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown instruction %q", s)
}

// Instruction is one of the decoded instruction structs below.
type Instruction interface {
	Kind() Kind
}

// Initialize creates a new pool.
type Initialize struct {
	// Nonce used to derive the pool authority.
	Nonce     uint8
	Fees      Fees
	SwapCurve SwapCurve
}

// Swap trades one pool token for the other.
type Swap struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

// DepositAllTokenTypes deposits both pool tokens in exchange for pool tokens.
type DepositAllTokenTypes struct {
	PoolTokenAmount     uint64
	MaximumTokenAAmount uint64
	MaximumTokenBAmount uint64
}

// WithdrawAllTokenTypes burns pool tokens in exchange for both pool tokens.
type WithdrawAllTokenTypes struct {
	PoolTokenAmount     uint64
	MinimumTokenAAmount uint64
	MinimumTokenBAmount uint64
}

// DepositSingleTokenTypeExactAmountIn deposits one token type.
type DepositSingleTokenTypeExactAmountIn struct {
	SourceTokenAmount      uint64
	MinimumPoolTokenAmount uint64
}

// WithdrawSingleTokenTypeExactAmountOut withdraws one token type.
type WithdrawSingleTokenTypeExactAmountOut struct {
	DestinationTokenAmount uint64
	MaximumPoolTokenAmount uint64
}

func (Initialize) Kind() Kind { return KindInitialize }
func (Swap) Kind() Kind { return KindSwap }
func (DepositAllTokenTypes) Kind() Kind { return KindDepositAllTokenTypes }
func (WithdrawAllTokenTypes) Kind() Kind { return KindWithdrawAllTokenTypes }
func (DepositSingleTokenTypeExactAmountIn) Kind() Kind { return KindDepositSingleTokenTypeExactAmountIn }
func (WithdrawSingleTokenTypeExactAmountOut) Kind() Kind { return KindWithdrawSingleTokenTypeExactAmountOut }

func decode[T Instruction](payload []byte, size int) (Instruction, error) {
	ins, err := util.DeserializePrefix[T](payload, size)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

// Unpack decodes instruction data. Every malformed input yields
// swaperrors.InvalidInstruction.
func Unpack(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, swaperrors.InvalidInstruction
	}
	kind := Kind(data[0])
	if !kind.Valid() {
		return nil, swaperrors.InvalidInstruction
	}
	ins, err := kinds[kind].decode(data[1:], kind.PayloadSize())
	if err != nil {
		return nil, swaperrors.InvalidInstruction
	}
	if initIns, ok := ins.(Initialize); ok && !initIns.SwapCurve.CurveType.Valid() {
		return nil, swaperrors.InvalidInstruction
	}
	return ins, nil
}

// Pack encodes an instruction, tag byte first.
func Pack(ins Instruction) []byte {
	return append([]byte{byte(ins.Kind())}, util.MustSerialize(ins)...)
}
