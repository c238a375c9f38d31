package estimate_test

import (
	"math/big"
	"testing"
	"time"

	"twodes/internal/estimate"
)

func TestBruteForce(t *testing.T) {
	e := estimate.BruteForce(time.Nanosecond, 56)
	want, _ := new(big.Int).SetString("72057594037927936", 10)
	if e.Nanos.Cmp(want) != 0 {
		t.Fatalf("Nanos = %s, want %s", e.Nanos, want)
	}
	if got := e.Seconds().Int64(); got != 72057594 {
		t.Fatalf("Seconds = %d, want 72057594", got)
	}
	if got := e.Years().Int64(); got != 2 {
		t.Fatalf("Years = %d, want 2", got)
	}
	if got := e.Expected().Seconds().Int64(); got != 36028797 {
		t.Fatalf("Expected().Seconds = %d, want 36028797", got)
	}
}

func TestBruteForce_LargeSpaceDoesNotOverflow(t *testing.T) {
	e := estimate.BruteForce(time.Second, 80)
	want := new(big.Int).Lsh(big.NewInt(1), 80)
	want.Mul(want, big.NewInt(int64(time.Second)))
	if e.Nanos.Cmp(want) != 0 {
		t.Fatalf("Nanos = %s, want %s", e.Nanos, want)
	}
}

func TestFromBatch(t *testing.T) {
	// 1000 calls in 1ms is 1µs per call.
	e := estimate.FromBatch(time.Millisecond, 1000, 10)
	if e.PerCall != time.Microsecond {
		t.Fatalf("PerCall = %v, want 1µs", e.PerCall)
	}
	if got := e.Nanos.Int64(); got != 1024000 {
		t.Fatalf("Nanos = %d, want 1024000", got)
	}
}

func TestFromBatch_KeepsSubNanosecondCost(t *testing.T) {
	// 1000 calls in 500ns: PerCall rounds to 0 but the projection must not.
	e := estimate.FromBatch(500*time.Nanosecond, 1000, 20)
	if e.Nanos.Sign() == 0 {
		t.Fatal("projection collapsed to zero")
	}
	if got := e.Nanos.Int64(); got != 524288 {
		t.Fatalf("Nanos = %d, want 524288", got)
	}
}
