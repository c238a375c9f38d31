package bench_test

import (
	"sync"
	"testing"
	"time"

	"twodes/internal/bench"
)

func TestRun_CallsN(t *testing.T) {
	calls := 0
	res := bench.Run(25, func() { calls++ })
	if calls != 25 || res.N != 25 {
		t.Fatalf("calls = %d, N = %d, want 25", calls, res.N)
	}
	if res.PerCall != res.Total/25 {
		t.Fatalf("PerCall = %v, Total/25 = %v", res.PerCall, res.Total/25)
	}
}

func TestRun_ClampsN(t *testing.T) {
	calls := 0
	res := bench.Run(0, func() { calls++ })
	if calls != 1 || res.N != 1 {
		t.Fatalf("calls = %d, N = %d, want 1", calls, res.N)
	}
}

func TestRun_MeasuresElapsed(t *testing.T) {
	res := bench.Run(2, func() { time.Sleep(time.Millisecond) })
	if res.Total < 2*time.Millisecond {
		t.Fatalf("Total = %v, want at least 2ms", res.Total)
	}
}

func TestEncrypt(t *testing.T) {
	res := bench.Encrypt(0x33333333333333, 0x1234567887654321, 1000)
	if res.N != 1000 {
		t.Fatalf("N = %d, want 1000", res.N)
	}
	if res.Total <= 0 {
		t.Fatalf("Total = %v, want > 0", res.Total)
	}
}

func TestEncrypt_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]bench.Result, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = bench.Encrypt(0x33333333333333, uint64(i), 500)
		}(i)
	}
	wg.Wait()
	for i, res := range results {
		if res.N != 500 {
			t.Fatalf("run %d: N = %d, want 500", i, res.N)
		}
	}
}
