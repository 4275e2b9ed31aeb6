package processor_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/tokenswap/tokenswap/packages/isc"
	"github.com/tokenswap/tokenswap/packages/swap/instruction"
	"github.com/tokenswap/tokenswap/packages/swap/processor"
	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
	"github.com/tokenswap/tokenswap/packages/testutil/testlogger"
)

func accounts(n int) []*isc.AccountInfo {
	ret := make([]*isc.AccountInfo, n)
	for i := range ret {
		ret[i] = isc.NewAccountInfo(solana.NewWallet().PublicKey(), false, true)
	}
	return ret
}

func TestProcessDispatchesSwap(t *testing.T) {
	rec := testlogger.NewRecorderFor(t)
	programID := solana.NewWallet().PublicKey()
	accs := accounts(11)

	var got []instruction.Swap
	var hostFee *isc.AccountInfo
	p := processor.New(rec,
		processor.Handle(func(ctx *processor.Context, ins instruction.Swap) error {
			require.Equal(t, programID, ctx.ProgramID)
			require.Equal(t, accs, ctx.Accounts)
			hostFee = ctx.OptionalAccount(10)
			got = append(got, ins)
			return nil
		}),
	)
	require.True(t, p.Handles(instruction.KindSwap))
	require.False(t, p.Handles(instruction.KindInitialize))

	ins := instruction.Swap{AmountIn: 100000, MinimumAmountOut: 90661}
	err := p.Process(programID, accs, instruction.Pack(ins))
	require.NoError(t, err)
	require.Equal(t, []instruction.Swap{ins}, got)
	require.Same(t, accs[10], hostFee)
	require.Equal(t, []testlogger.Line{{Level: testlogger.LevelDebug, Text: "Instruction: Swap"}}, rec.All())
}

func TestProcessHandlerError(t *testing.T) {
	p := processor.New(testlogger.NewRecorder(),
		processor.Handle(func(ctx *processor.Context, ins instruction.WithdrawAllTokenTypes) error {
			require.Nil(t, ctx.OptionalAccount(11))
			return swaperrors.ZeroTradingTokens
		}),
	)
	err := p.Process(solana.PublicKey{}, accounts(11), instruction.Pack(instruction.WithdrawAllTokenTypes{PoolTokenAmount: 1}))
	require.ErrorIs(t, err, swaperrors.ZeroTradingTokens)
}

func TestProcessRejects(t *testing.T) {
	initialize := instruction.Initialize{
		Fees: instruction.Fees{TradeFeeNumerator: 1},
	}
	called := 0
	p := processor.New(testlogger.NewRecorder(),
		processor.Handle(func(*processor.Context, instruction.Initialize) error {
			called++
			return nil
		}),
		processor.Handle(func(*processor.Context, instruction.Swap) error {
			called++
			return nil
		}),
	)

	tests := []struct {
		name     string
		accounts int
		data     []byte
		err      error
	}{
		{"empty data", 10, nil, swaperrors.InvalidInstruction},
		{"unknown tag", 10, []byte{42}, swaperrors.InvalidInstruction},
		{"not enough accounts", 9, instruction.Pack(instruction.Swap{}), isc.ErrNotEnoughAccountKeys},
		{"invalid fees", 8, instruction.Pack(initialize), swaperrors.InvalidFee},
		{"no handler", 10, instruction.Pack(instruction.DepositAllTokenTypes{}), swaperrors.InvalidInstruction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Process(solana.PublicKey{}, accounts(tt.accounts), tt.data)
			require.ErrorIs(t, err, tt.err)
		})
	}
	require.Zero(t, called)
}

func TestDuplicateHandlerPanics(t *testing.T) {
	h := processor.Handle(func(*processor.Context, instruction.Swap) error { return nil })
	require.Equal(t, instruction.KindSwap, h.Kind())
	require.Panics(t, func() {
		processor.New(testlogger.NewRecorder(), h, h)
	})
}
