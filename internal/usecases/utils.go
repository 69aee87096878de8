package usecases

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherToWei converts an ether-denominated decimal to wei, truncating any
// sub-wei fraction.
func EtherToWei(amount decimal.Decimal) *big.Int {
	return amount.Shift(18).BigInt()
}

// WeiToEther converts a wei amount to an ether-denominated decimal.
func WeiToEther(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -18)
}

// FeeInEther computes gas units x effective gas price, expressed in ether.
func FeeInEther(gasUsed uint64, effectiveGasPrice *big.Int) decimal.Decimal {
	fee := new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), effectiveGasPrice)
	return WeiToEther(fee)
}
