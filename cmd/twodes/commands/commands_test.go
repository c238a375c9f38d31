package commands

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"twodes/internal/oracle"
)

// run executes the CLI with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncrypt_PracticalVector(t *testing.T) {
	out, err := run(t, "encrypt", "1234567887654321")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if want := "1234567887654321 c844e31b90953751\n"; out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestEncrypt_BadKey(t *testing.T) {
	if _, err := run(t, "--key", "zz", "encrypt", "00"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestTrace(t *testing.T) {
	out, err := run(t, "trace")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(out, "ciphertext c844e31b90953751") {
		t.Fatalf("trace output missing ciphertext:\n%s", out)
	}
	if !strings.Contains(out, "round 2") {
		t.Fatalf("trace output missing round 2:\n%s", out)
	}
}

func TestDDT_Top(t *testing.T) {
	out, err := run(t, "ddt", "1", "--top", "1")
	if err != nil {
		t.Fatalf("ddt: %v", err)
	}
	if !strings.Contains(out, "08   a     16     16/64") {
		t.Fatalf("unexpected ddt output:\n%s", out)
	}
}

func TestDDT_BadBox(t *testing.T) {
	if _, err := run(t, "ddt", "9"); err == nil {
		t.Fatal("expected error for s-box 9")
	}
}

func TestEstimate(t *testing.T) {
	out, err := run(t, "estimate", "--per-call", "1ns", "--bits", "56")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !strings.Contains(out, "72057594 s (2 years)") {
		t.Fatalf("unexpected estimate output:\n%s", out)
	}
	if _, err := run(t, "estimate"); err == nil {
		t.Fatal("expected error without --per-call or --batch")
	}
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "-n", "10")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if !strings.HasPrefix(out, "c: 0xc844e31b90953751\n") {
		t.Fatalf("unexpected bench output:\n%s", out)
	}
	if !strings.Contains(out, "Time for 10 iterations") {
		t.Fatalf("bench output missing timing:\n%s", out)
	}
}

func TestVectors_GenAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt.lz4")
	if _, err := run(t, "vectors", "gen", "-n", "20", "-o", path); err != nil {
		t.Fatalf("vectors gen: %v", err)
	}
	out, err := run(t, "vectors", "check", path)
	if err != nil {
		t.Fatalf("vectors check: %v", err)
	}
	if !strings.Contains(out, "20 blocks agree") {
		t.Fatalf("unexpected check output:\n%s", out)
	}
	if _, err := run(t, "--key", "01", "vectors", "check", path); err == nil {
		t.Fatal("expected mismatches under a different key")
	}
}

func TestVerify_RequiresOracle(t *testing.T) {
	if _, err := run(t, "verify"); err == nil {
		t.Fatal("expected error without an oracle")
	}
}

func TestVerify_HTTPOracle(t *testing.T) {
	srv := httptest.NewServer(oracle.NewHandler(defaultKey))
	defer srv.Close()

	out, err := run(t, "verify", "-n", "5", "--oracle-url", srv.URL)
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	if !strings.Contains(out, "6 blocks agree") {
		t.Fatalf("unexpected verify output:\n%s", out)
	}

	if _, err := run(t, "--key", "01", "verify", "-n", "1", "--oracle-url", srv.URL); err == nil {
		t.Fatal("expected disagreement with a different reference key")
	}
}

func TestVectorsGen_NegativeCount(t *testing.T) {
	if _, err := run(t, "vectors", "gen", "-n", "-1"); err == nil {
		t.Fatal("expected error for negative --count")
	}
}

func TestVerify_NegativeCount(t *testing.T) {
	srv := httptest.NewServer(oracle.NewHandler(defaultKey))
	defer srv.Close()

	if _, err := run(t, "verify", "-n", "-1", "--oracle-url", srv.URL); err == nil {
		t.Fatal("expected error for negative --count")
	}
}
