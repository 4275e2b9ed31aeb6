package entrypoint_test

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/stretchr/testify/require"

	"github.com/tokenswap/tokenswap/packages/entrypoint"
	"github.com/tokenswap/tokenswap/packages/isc"
	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
	"github.com/tokenswap/tokenswap/packages/testutil/testlogger"
)

type call struct {
	programID solana.PublicKey
	accounts  []*isc.AccountInfo
	data      []byte
}

type fakeProcessor struct {
	calls []call
	err   error
}

func (p *fakeProcessor) Process(programID solana.PublicKey, accounts []*isc.AccountInfo, data []byte) error {
	p.calls = append(p.calls, call{programID, accounts, data})
	return p.err
}

func testInvocation() (solana.PublicKey, []*isc.AccountInfo, []byte) {
	accounts := []*isc.AccountInfo{
		isc.NewAccountInfo(solana.NewWallet().PublicKey(), true, true),
		{Key: solana.NewWallet().PublicKey(), Lamports: 1000, Data: []byte{1, 2, 3}},
	}
	return solana.NewWallet().PublicKey(), accounts, []byte{1, 0xaa, 0xbb}
}

func TestSuccessEmitsNothing(t *testing.T) {
	rec := testlogger.NewRecorder()
	p := &fakeProcessor{}
	programID, accounts, data := testInvocation()

	err := entrypoint.New(p, rec).ProcessInstruction(programID, accounts, data)
	require.NoError(t, err)
	require.Len(t, p.calls, 1)
	require.Empty(t, rec.All())
}

func TestFailurePrintsOnceAndPropagates(t *testing.T) {
	rec := testlogger.NewRecorder()
	p := &fakeProcessor{err: swaperrors.InvalidInstruction}
	programID, accounts, data := testInvocation()

	err := entrypoint.New(p, rec).ProcessInstruction(programID, accounts, data)
	require.Equal(t, swaperrors.InvalidInstruction, err)
	require.Len(t, p.calls, 1)
	require.Equal(t, []string{"Error: InvalidInstruction"}, rec.Lines())
	require.Equal(t, isc.Custom(uint32(swaperrors.InvalidInstruction)), isc.ToProgramError(err))
}

func TestWrappedErrorReturnedUnchanged(t *testing.T) {
	rec := testlogger.NewRecorder()
	wrapped := ierrors.Wrap(swaperrors.ExceededSlippage, "swap")
	p := &fakeProcessor{err: wrapped}
	programID, accounts, data := testInvocation()

	err := entrypoint.New(p, rec).ProcessInstruction(programID, accounts, data)
	require.True(t, err == wrapped)
	require.Equal(t, []string{"Error: " + swaperrors.ExceededSlippage.Error()}, rec.Lines())
}

func TestBuiltinErrorPrinted(t *testing.T) {
	rec := testlogger.NewRecorder()
	p := &fakeProcessor{err: isc.ErrNotEnoughAccountKeys}
	programID, accounts, data := testInvocation()

	err := entrypoint.New(p, rec).ProcessInstruction(programID, accounts, data)
	require.ErrorIs(t, err, isc.ErrNotEnoughAccountKeys)
	require.Equal(t, []string{"Error: NotEnoughAccountKeys"}, rec.Lines())
}

func TestInputsForwardedUnchanged(t *testing.T) {
	p := &fakeProcessor{err: swaperrors.InvalidInput}
	programID, accounts, data := testInvocation()
	accountsBefore := make([]isc.AccountInfo, len(accounts))
	for i, a := range accounts {
		accountsBefore[i] = *a
		accountsBefore[i].Data = bytes.Clone(a.Data)
	}
	dataBefore := bytes.Clone(data)

	_ = entrypoint.New(p, testlogger.NewRecorder()).ProcessInstruction(programID, accounts, data)

	require.Len(t, p.calls, 1)
	require.Equal(t, programID, p.calls[0].programID)
	require.Equal(t, accounts, p.calls[0].accounts)
	require.Same(t, accounts[0], p.calls[0].accounts[0])
	require.Equal(t, dataBefore, p.calls[0].data)
	require.Equal(t, dataBefore, data)
	for i, a := range accounts {
		require.Equal(t, accountsBefore[i], *a)
	}
}

func TestEmptyInstructionDataForwarded(t *testing.T) {
	p := &fakeProcessor{}
	programID, accounts, _ := testInvocation()

	err := entrypoint.New(p, testlogger.NewRecorder()).ProcessInstruction(programID, accounts, []byte{})
	require.NoError(t, err)
	require.Len(t, p.calls, 1)
	require.NotNil(t, p.calls[0].data)
	require.Empty(t, p.calls[0].data)
}

func TestRepeatedCallsBehaveIdentically(t *testing.T) {
	rec := testlogger.NewRecorder()
	p := &fakeProcessor{err: swaperrors.InvalidFee}
	ep := entrypoint.New(p, rec)
	programID, accounts, data := testInvocation()

	err1 := ep.ProcessInstruction(programID, accounts, data)
	err2 := ep.ProcessInstruction(programID, accounts, data)
	require.Equal(t, err1, err2)
	require.Len(t, p.calls, 2)
	require.Equal(t, []string{"Error: " + swaperrors.InvalidFee.Error(), "Error: " + swaperrors.InvalidFee.Error()}, rec.Lines())
}
