// Package swapclient builds token-swap instructions ready to be put in a transaction.
package swapclient

import (
	"github.com/gagliardetto/solana-go"

	"github.com/tokenswap/tokenswap/packages/swap/instruction"
)

// Pool lists the accounts that make up a swap pool.
type Pool struct {
	Swap       solana.PublicKey
	Authority  solana.PublicKey
	TokenA     solana.PublicKey
	TokenB     solana.PublicKey
	PoolMint   solana.PublicKey
	FeeAccount solana.PublicKey
}

// Client builds instructions for one pool of a deployed token-swap program.
type Client struct {
	ProgramID      solana.PublicKey
	TokenProgramID solana.PublicKey
	Pool           Pool
}

// New creates a new swapclient.Client using the SPL token program.
func New(programID solana.PublicKey, pool Pool) *Client {
	return &Client{
		ProgramID:      programID,
		TokenProgramID: solana.TokenProgramID,
		Pool:           pool,
	}
}

func (c *Client) newInstruction(ins instruction.Instruction, accounts ...*solana.AccountMeta) *solana.GenericInstruction {
	return solana.NewInstruction(c.ProgramID, accounts, instruction.Pack(ins))
}

func (c *Client) head(userTransferAuthority solana.PublicKey) []*solana.AccountMeta {
	return []*solana.AccountMeta{
		solana.Meta(c.Pool.Swap),
		solana.Meta(c.Pool.Authority),
		solana.Meta(userTransferAuthority).SIGNER(),
	}
}

// Initialize creates the pool. The swap account signs, the initial pool
// tokens go to destination.
func (c *Client) Initialize(destination solana.PublicKey, ins instruction.Initialize) *solana.GenericInstruction {
	return c.newInstruction(ins,
		solana.Meta(c.Pool.Swap).WRITE().SIGNER(),
		solana.Meta(c.Pool.Authority),
		solana.Meta(c.Pool.TokenA),
		solana.Meta(c.Pool.TokenB),
		solana.Meta(c.Pool.PoolMint).WRITE(),
		solana.Meta(c.Pool.FeeAccount),
		solana.Meta(destination).WRITE(),
		solana.Meta(c.TokenProgramID),
	)
}

type SwapParams struct {
	UserTransferAuthority solana.PublicKey
	Source                solana.PublicKey
	Destination           solana.PublicKey
	// AToB swaps token A for token B, otherwise B for A.
	AToB bool
	// HostFeeAccount optionally receives the host share of the fee.
	HostFeeAccount *solana.PublicKey
}

func (c *Client) Swap(par SwapParams, ins instruction.Swap) *solana.GenericInstruction {
	swapSource, swapDestination := c.Pool.TokenB, c.Pool.TokenA
	if par.AToB {
		swapSource, swapDestination = c.Pool.TokenA, c.Pool.TokenB
	}
	accounts := append(c.head(par.UserTransferAuthority),
		solana.Meta(par.Source).WRITE(),
		solana.Meta(swapSource).WRITE(),
		solana.Meta(swapDestination).WRITE(),
		solana.Meta(par.Destination).WRITE(),
		solana.Meta(c.Pool.PoolMint).WRITE(),
		solana.Meta(c.Pool.FeeAccount).WRITE(),
		solana.Meta(c.TokenProgramID),
	)
	if par.HostFeeAccount != nil {
		accounts = append(accounts, solana.Meta(*par.HostFeeAccount).WRITE())
	}
	return c.newInstruction(ins, accounts...)
}

func (c *Client) DepositAllTokenTypes(
	userTransferAuthority, sourceA, sourceB, destination solana.PublicKey,
	ins instruction.DepositAllTokenTypes,
) *solana.GenericInstruction {
	return c.newInstruction(ins, append(c.head(userTransferAuthority),
		solana.Meta(sourceA).WRITE(),
		solana.Meta(sourceB).WRITE(),
		solana.Meta(c.Pool.TokenA).WRITE(),
		solana.Meta(c.Pool.TokenB).WRITE(),
		solana.Meta(c.Pool.PoolMint).WRITE(),
		solana.Meta(destination).WRITE(),
		solana.Meta(c.TokenProgramID),
	)...)
}

func (c *Client) WithdrawAllTokenTypes(
	userTransferAuthority, source, destinationA, destinationB solana.PublicKey,
	ins instruction.WithdrawAllTokenTypes,
) *solana.GenericInstruction {
	return c.newInstruction(ins, append(c.head(userTransferAuthority),
		solana.Meta(c.Pool.PoolMint).WRITE(),
		solana.Meta(source).WRITE(),
		solana.Meta(c.Pool.TokenA).WRITE(),
		solana.Meta(c.Pool.TokenB).WRITE(),
		solana.Meta(destinationA).WRITE(),
		solana.Meta(destinationB).WRITE(),
		solana.Meta(c.Pool.FeeAccount).WRITE(),
		solana.Meta(c.TokenProgramID),
	)...)
}

func (c *Client) DepositSingleTokenTypeExactAmountIn(
	userTransferAuthority, source, destination solana.PublicKey,
	ins instruction.DepositSingleTokenTypeExactAmountIn,
) *solana.GenericInstruction {
	return c.newInstruction(ins, append(c.head(userTransferAuthority),
		solana.Meta(source).WRITE(),
		solana.Meta(c.Pool.TokenA).WRITE(),
		solana.Meta(c.Pool.TokenB).WRITE(),
		solana.Meta(c.Pool.PoolMint).WRITE(),
		solana.Meta(destination).WRITE(),
		solana.Meta(c.TokenProgramID),
	)...)
}

func (c *Client) WithdrawSingleTokenTypeExactAmountOut(
	userTransferAuthority, source, destination solana.PublicKey,
	ins instruction.WithdrawSingleTokenTypeExactAmountOut,
) *solana.GenericInstruction {
	return c.newInstruction(ins, append(c.head(userTransferAuthority),
		solana.Meta(c.Pool.PoolMint).WRITE(),
		solana.Meta(source).WRITE(),
		solana.Meta(c.Pool.TokenA).WRITE(),
		solana.Meta(c.Pool.TokenB).WRITE(),
		solana.Meta(destination).WRITE(),
		solana.Meta(c.Pool.FeeAccount).WRITE(),
		solana.Meta(c.TokenProgramID),
	)...)
}
