package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"twodes/internal/app"
	"twodes/internal/oracle"
)

func TestNewWire_DefaultsToReference(t *testing.T) {
	w, err := app.NewWire(app.Config{Key: 0x33333333333333})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.External {
		t.Fatal("External = true with no oracle configured")
	}
	if _, ok := w.Oracle.(oracle.Reference); !ok {
		t.Fatalf("Oracle = %T, want oracle.Reference", w.Oracle)
	}
	if w.HTTP == nil {
		t.Fatal("HTTP client not defaulted")
	}
}

func TestNewWire_SelectsOracle(t *testing.T) {
	w, err := app.NewWire(app.Config{OracleBin: "./encrypt"})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if e, ok := w.Oracle.(oracle.Exec); !ok || e.Path != "./encrypt" {
		t.Fatalf("Oracle = %#v, want Exec ./encrypt", w.Oracle)
	}

	w, err = app.NewWire(app.Config{OracleURL: "http://127.0.0.1:8080"})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if h, ok := w.Oracle.(*oracle.HTTP); !ok || h.Base != "http://127.0.0.1:8080" {
		t.Fatalf("Oracle = %#v, want HTTP client", w.Oracle)
	}
}

func TestNewWire_Conflict(t *testing.T) {
	_, err := app.NewWire(app.Config{OracleBin: "./encrypt", OracleURL: "http://x"})
	if !errors.Is(err, app.ErrOracleConflict) {
		t.Fatalf("err = %v, want ErrOracleConflict", err)
	}
}

func TestApp_KeyAndContext(t *testing.T) {
	a, err := app.New(app.Config{Key: 0xff33333333333333, Timeout: time.Minute})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Key() != 0x33333333333333 {
		t.Fatalf("Key = %#x, want masked to 56 bits", a.Key())
	}
	ctx, cancel := a.Context(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("context has no deadline")
	}
}
