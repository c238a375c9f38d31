// Package estimate projects how long an exhaustive key search would take
// given the measured cost of one encryption.
package estimate

import (
	"fmt"
	"math/big"
	"time"
)

// SecondsPerYear uses a 365-day year.
const SecondsPerYear = 365 * 24 * 60 * 60

// Estimate is the cost of trying every key in a 2^KeyBits space.
type Estimate struct {
	KeyBits uint
	PerCall time.Duration
	Nanos   *big.Int
}

// BruteForce returns the worst-case time to try 2^keyBits keys at perCall
// each.
func BruteForce(perCall time.Duration, keyBits uint) Estimate {
	n := new(big.Int).Lsh(big.NewInt(1), keyBits)
	n.Mul(n, big.NewInt(int64(perCall)))
	return Estimate{KeyBits: keyBits, PerCall: perCall, Nanos: n}
}

// FromBatch derives the per-call cost from a batch of n calls that took total
// and projects it like BruteForce. The division is done after scaling so
// sub-nanosecond per-call costs are not lost.
func FromBatch(total time.Duration, n int, keyBits uint) Estimate {
	if n < 1 {
		n = 1
	}
	nanos := new(big.Int).Lsh(big.NewInt(int64(total)), keyBits)
	nanos.Quo(nanos, big.NewInt(int64(n)))
	return Estimate{KeyBits: keyBits, PerCall: total / time.Duration(n), Nanos: nanos}
}

// Expected is the average case: half of the key space.
func (e Estimate) Expected() Estimate {
	return Estimate{
		KeyBits: e.KeyBits,
		PerCall: e.PerCall,
		Nanos:   new(big.Int).Rsh(e.Nanos, 1),
	}
}

// Seconds returns the total in whole seconds.
func (e Estimate) Seconds() *big.Int {
	return new(big.Int).Quo(e.Nanos, big.NewInt(int64(time.Second)))
}

// Years returns the total in whole 365-day years.
func (e Estimate) Years() *big.Int {
	return new(big.Int).Quo(e.Seconds(), big.NewInt(SecondsPerYear))
}

func (e Estimate) String() string {
	return fmt.Sprintf("2^%d keys at %v each: %s s (%s years)", e.KeyBits, e.PerCall, e.Seconds(), e.Years())
}
