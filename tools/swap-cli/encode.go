package main

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tokenswap/tokenswap/packages/swap/instruction"
)

type encodeParams struct {
	nonce      uint8
	tradeFee   string
	ownerTrade string
	ownerWdraw string
	hostFee    string
	curve      string
	curveParam uint64

	amountIn               uint64
	minimumAmountOut       uint64
	poolTokenAmount        uint64
	maximumTokenAAmount    uint64
	maximumTokenBAmount    uint64
	minimumTokenAAmount    uint64
	minimumTokenBAmount    uint64
	sourceTokenAmount      uint64
	minimumPoolTokenAmount uint64
	destinationTokenAmount uint64
	maximumPoolTokenAmount uint64

	hex bool
}

func (p *encodeParams) initFlags(fs *pflag.FlagSet) {
	fs.Uint8Var(&p.nonce, "nonce", 0, "Initialize: authority nonce")
	fs.StringVar(&p.tradeFee, "trade-fee", "0/0", "Initialize: trade fee as numerator/denominator")
	fs.StringVar(&p.ownerTrade, "owner-trade-fee", "0/0", "Initialize: owner trade fee")
	fs.StringVar(&p.ownerWdraw, "owner-withdraw-fee", "0/0", "Initialize: owner withdraw fee")
	fs.StringVar(&p.hostFee, "host-fee", "0/0", "Initialize: host fee")
	fs.StringVar(&p.curve, "curve", instruction.ConstantProduct.String(), "Initialize: curve type")
	fs.Uint64Var(&p.curveParam, "curve-param", 0, "Initialize: first curve parameter (little-endian u64)")

	fs.Uint64Var(&p.amountIn, "amount-in", 0, "Swap")
	fs.Uint64Var(&p.minimumAmountOut, "minimum-amount-out", 0, "Swap")
	fs.Uint64Var(&p.poolTokenAmount, "pool-token-amount", 0, "DepositAllTokenTypes, WithdrawAllTokenTypes")
	fs.Uint64Var(&p.maximumTokenAAmount, "maximum-token-a-amount", 0, "DepositAllTokenTypes")
	fs.Uint64Var(&p.maximumTokenBAmount, "maximum-token-b-amount", 0, "DepositAllTokenTypes")
	fs.Uint64Var(&p.minimumTokenAAmount, "minimum-token-a-amount", 0, "WithdrawAllTokenTypes")
	fs.Uint64Var(&p.minimumTokenBAmount, "minimum-token-b-amount", 0, "WithdrawAllTokenTypes")
	fs.Uint64Var(&p.sourceTokenAmount, "source-token-amount", 0, "DepositSingleTokenTypeExactAmountIn")
	fs.Uint64Var(&p.minimumPoolTokenAmount, "minimum-pool-token-amount", 0, "DepositSingleTokenTypeExactAmountIn")
	fs.Uint64Var(&p.destinationTokenAmount, "destination-token-amount", 0, "WithdrawSingleTokenTypeExactAmountOut")
	fs.Uint64Var(&p.maximumPoolTokenAmount, "maximum-pool-token-amount", 0, "WithdrawSingleTokenTypeExactAmountOut")

	fs.BoolVar(&p.hex, "hex", false, "print 0x-hex instead of base58")
}

func parseFee(s string) (numerator, denominator uint64, err error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, ierrors.Errorf("fee %q must be numerator/denominator", s)
	}
	if numerator, err = strconv.ParseUint(num, 10, 64); err != nil {
		return 0, 0, ierrors.Wrapf(err, "invalid fee numerator in %q", s)
	}
	if denominator, err = strconv.ParseUint(den, 10, 64); err != nil {
		return 0, 0, ierrors.Wrapf(err, "invalid fee denominator in %q", s)
	}
	return numerator, denominator, nil
}

func (p *encodeParams) fees() (fees instruction.Fees, err error) {
	for _, f := range []struct {
		s        string
		num, den *uint64
	}{
		{p.tradeFee, &fees.TradeFeeNumerator, &fees.TradeFeeDenominator},
		{p.ownerTrade, &fees.OwnerTradeFeeNumerator, &fees.OwnerTradeFeeDenominator},
		{p.ownerWdraw, &fees.OwnerWithdrawFeeNumerator, &fees.OwnerWithdrawFeeDenominator},
		{p.hostFee, &fees.HostFeeNumerator, &fees.HostFeeDenominator},
	} {
		if *f.num, *f.den, err = parseFee(f.s); err != nil {
			return fees, err
		}
	}
	return fees, nil
}

func (p *encodeParams) build(kind instruction.Kind) (instruction.Instruction, error) {
	switch kind {
	case instruction.KindInitialize:
		fees, err := p.fees()
		if err != nil {
			return nil, err
		}
		curveType, err := instruction.CurveTypeFromString(p.curve)
		if err != nil {
			return nil, err
		}
		ins := instruction.Initialize{
			Nonce:     p.nonce,
			Fees:      fees,
			SwapCurve: instruction.SwapCurve{CurveType: curveType},
		}
		binary.LittleEndian.PutUint64(ins.SwapCurve.Parameters[:], p.curveParam)
		return ins, nil
	case instruction.KindSwap:
		return instruction.Swap{AmountIn: p.amountIn, MinimumAmountOut: p.minimumAmountOut}, nil
	case instruction.KindDepositAllTokenTypes:
		return instruction.DepositAllTokenTypes{
			PoolTokenAmount:     p.poolTokenAmount,
			MaximumTokenAAmount: p.maximumTokenAAmount,
			MaximumTokenBAmount: p.maximumTokenBAmount,
		}, nil
	case instruction.KindWithdrawAllTokenTypes:
		return instruction.WithdrawAllTokenTypes{
			PoolTokenAmount:     p.poolTokenAmount,
			MinimumTokenAAmount: p.minimumTokenAAmount,
			MinimumTokenBAmount: p.minimumTokenBAmount,
		}, nil
	case instruction.KindDepositSingleTokenTypeExactAmountIn:
		return instruction.DepositSingleTokenTypeExactAmountIn{
			SourceTokenAmount:      p.sourceTokenAmount,
			MinimumPoolTokenAmount: p.minimumPoolTokenAmount,
		}, nil
	case instruction.KindWithdrawSingleTokenTypeExactAmountOut:
		return instruction.WithdrawSingleTokenTypeExactAmountOut{
			DestinationTokenAmount: p.destinationTokenAmount,
			MaximumPoolTokenAmount: p.maximumPoolTokenAmount,
		}, nil
	}
	return nil, ierrors.Errorf("unsupported instruction %s", kind)
}

func newEncodeCmd() *cobra.Command {
	params := &encodeParams{}
	cmd := &cobra.Command{
		Use:   "encode <instruction>",
		Short: "Encode instruction data from flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := instruction.KindFromString(args[0])
			if err != nil {
				return err
			}
			ins, err := params.build(kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatData(instruction.Pack(ins), params.hex))
			return nil
		},
	}
	params.initFlags(cmd.Flags())
	return cmd
}
