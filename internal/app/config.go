package app

import (
	"net/http"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Key       uint64        // 56-bit master key for the in-process cipher
	OracleBin string        // external encrypt program, e.g. ./encrypt
	OracleURL string        // oracle service base URL, e.g. http://127.0.0.1:8080
	Timeout   time.Duration // per-command deadline; zero means none
	HTTP      *http.Client  // optional; defaults to http.DefaultClient
}
