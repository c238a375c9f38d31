// Package bench times repeated calls to the cipher so the result can feed a
// brute-force estimate.
package bench

import (
	"sync/atomic"
	"time"

	"twodes/internal/des"
)

// Result is the outcome of one timing run.
type Result struct {
	N       int
	Total   time.Duration
	PerCall time.Duration
}

// sink keeps results observable so the calls cannot be optimised away. Each
// run accumulates locally and stores once, so concurrent runs do not race.
var sink atomic.Uint64

// Run calls fn n times and reports the elapsed wall-clock time. n < 1 is
// treated as 1.
func Run(n int, fn func()) Result {
	if n < 1 {
		n = 1
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	total := time.Since(start)
	return Result{N: n, Total: total, PerCall: total / time.Duration(n)}
}

// Encrypt times n calls of des.EncryptBlock on the same key and block.
func Encrypt(key, block uint64, n int) Result {
	var acc uint64
	res := Run(n, func() { acc ^= des.EncryptBlock(key, block) })
	sink.Store(acc)
	return res
}
