package isc

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// AccountInfo is a handle to host-managed account state.
// The program receives it as-is; only the processor's handlers look inside.
type AccountInfo struct {
	Key        solana.PublicKey
	IsSigner   bool
	IsWritable bool
	Lamports   uint64
	Data       []byte
	Owner      solana.PublicKey
	Executable bool
}

func NewAccountInfo(key solana.PublicKey, isSigner, isWritable bool) *AccountInfo {
	return &AccountInfo{
		Key:        key,
		IsSigner:   isSigner,
		IsWritable: isWritable,
	}
}

// Meta returns the account reference as it appears in an instruction.
func (a *AccountInfo) Meta() *solana.AccountMeta {
	return solana.NewAccountMeta(a.Key, a.IsWritable, a.IsSigner)
}

func (a *AccountInfo) String() string {
	return fmt.Sprintf("AccountInfo(%s, signer=%v, writable=%v, lamports=%d, data=%d bytes)",
		a.Key, a.IsSigner, a.IsWritable, a.Lamports, len(a.Data))
}

// AccountInfosFromMetas creates empty account handles for the given metas,
// keeping their order.
func AccountInfosFromMetas(metas solana.AccountMetaSlice) []*AccountInfo {
	ret := make([]*AccountInfo, len(metas))
	for i, m := range metas {
		ret[i] = NewAccountInfo(m.PublicKey, m.IsSigner, m.IsWritable)
	}
	return ret
}
