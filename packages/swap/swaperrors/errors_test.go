package swaperrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenswap/tokenswap/packages/isc"
	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
	"github.com/tokenswap/tokenswap/packages/testutil/testlogger"
)

func TestCodes(t *testing.T) {
	require.EqualValues(t, 0, swaperrors.AlreadyInUse)
	require.EqualValues(t, 14, swaperrors.InvalidInstruction)
	require.EqualValues(t, 23, swaperrors.InvalidFee)
	require.EqualValues(t, 27, swaperrors.UnsupportedCurveOperation)
	require.Len(t, swaperrors.All(), 28)
}

func TestEveryErrorHasTemplate(t *testing.T) {
	names := map[string]bool{}
	for _, e := range swaperrors.All() {
		require.NotEmpty(t, e.Name())
		require.NotEmpty(t, e.Error())
		require.False(t, names[e.Name()], "duplicate name %s", e.Name())
		names[e.Name()] = true
	}
}

func TestProgramErrorRoundTrip(t *testing.T) {
	for _, e := range swaperrors.All() {
		pe := isc.ToProgramError(e)
		code, ok := pe.CustomCode()
		require.True(t, ok)
		decoded, ok := swaperrors.Decode(code)
		require.True(t, ok)
		require.Equal(t, e, decoded)
	}
	require.Equal(t, isc.ErrCustomZero, swaperrors.AlreadyInUse.ProgramError())
}

func TestDecodeOutOfRange(t *testing.T) {
	_, ok := swaperrors.Decode(28)
	require.False(t, ok)
	require.Equal(t, "SwapError(99)", swaperrors.SwapError(99).Error())
}

func TestPrint(t *testing.T) {
	rec := testlogger.NewRecorder()
	swaperrors.InvalidInstruction.Print(rec)
	require.Equal(t, []string{"Error: InvalidInstruction"}, rec.Lines())

	rec.Reset()
	isc.PrintProgramError(rec, isc.Custom(uint32(swaperrors.ExceededSlippage)), swaperrors.Decode)
	require.Equal(t, []string{"Error: Swap instruction exceeds desired slippage limit"}, rec.Lines())

	rec.Reset()
	isc.PrintProgramError(rec, fmt.Errorf("pool: %w", swaperrors.InvalidFee), swaperrors.Decode)
	require.Equal(t, []string{"Error: " + swaperrors.InvalidFee.Error()}, rec.Lines())
}
