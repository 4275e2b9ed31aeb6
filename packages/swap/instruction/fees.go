package instruction

import (
	"fmt"

	"github.com/tokenswap/tokenswap/packages/swap/swaperrors"
)

// FeesSize is the packed size of Fees.
const FeesSize = 8 * 8

// Fees charged by a pool, each expressed as numerator/denominator.
type Fees struct {
	TradeFeeNumerator           uint64
	TradeFeeDenominator         uint64
	OwnerTradeFeeNumerator      uint64
	OwnerTradeFeeDenominator    uint64
	OwnerWithdrawFeeNumerator   uint64
	OwnerWithdrawFeeDenominator uint64
	HostFeeNumerator            uint64
	HostFeeDenominator          uint64
}

func validateFraction(numerator, denominator uint64) error {
	if denominator == 0 && numerator == 0 {
		return nil
	}
	if denominator == 0 || numerator > denominator {
		return swaperrors.InvalidFee
	}
	return nil
}

// Validate checks that every fee is a proper fraction. A 0/0 fee means "no fee".
func (f *Fees) Validate() error {
	for _, pair := range [][2]uint64{
		{f.TradeFeeNumerator, f.TradeFeeDenominator},
		{f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator},
		{f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator},
		{f.HostFeeNumerator, f.HostFeeDenominator},
	} {
		if err := validateFraction(pair[0], pair[1]); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fees) String() string {
	return fmt.Sprintf("trade %d/%d, owner trade %d/%d, owner withdraw %d/%d, host %d/%d",
		f.TradeFeeNumerator, f.TradeFeeDenominator,
		f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator,
		f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator,
		f.HostFeeNumerator, f.HostFeeDenominator,
	)
}
