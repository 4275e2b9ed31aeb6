package testhost_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/tokenswap/tokenswap/packages/isc"
	"github.com/tokenswap/tokenswap/packages/testutil/testhost"
)

func TestUnknownProgram(t *testing.T) {
	h := testhost.New()
	res := h.Invoke(solana.NewInstruction(solana.NewWallet().PublicKey(), nil, []byte{1}))
	require.False(t, res.OK())
	require.Equal(t, isc.ErrIncorrectProgramID, res.Code)
}

func TestCallConvertsError(t *testing.T) {
	h := testhost.New()
	programID := solana.NewWallet().PublicKey()
	h.Deploy(programID, func(_ solana.PublicKey, accounts []*isc.AccountInfo, data []byte) error {
		if len(data) == 0 {
			return isc.Custom(3)
		}
		require.Len(t, accounts, 1)
		require.True(t, accounts[0].IsSigner)
		return nil
	})

	res := h.Call(programID, nil, nil)
	require.Equal(t, isc.Custom(3), res.Code)
	require.Equal(t, isc.Custom(3), res.Err)

	signer := solana.NewWallet().PublicKey()
	res = h.Invoke(solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(signer).SIGNER()}, []byte{0}))
	require.True(t, res.OK())
	require.Zero(t, res.Code)
}
