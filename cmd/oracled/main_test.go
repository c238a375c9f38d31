package main

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"twodes/internal/oracle"
)

// lockedBuffer lets the test read what the server goroutines logged.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAccessLog_CoversUnmatchedRoutes(t *testing.T) {
	var buf lockedBuffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	srv := httptest.NewServer(accessLog(oracle.NewHandler(0x33333333333333)))
	defer srv.Close()

	cases := []struct {
		method, path string
		want         string
	}{
		{http.MethodGet, "/encrypt/00", "GET /encrypt/00 "},
		{http.MethodGet, "/nowhere", "GET /nowhere "},
		{http.MethodPost, "/encrypt/00", "POST /encrypt/00 "},
	}
	for _, tc := range cases {
		req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.method, tc.path, err)
		}
		resp.Body.Close()
	}

	out := buf.String()
	for _, tc := range cases {
		if !strings.Contains(out, tc.want) {
			t.Fatalf("access log missing %q:\n%s", tc.want, out)
		}
	}
	if !strings.Contains(out, " 404 ") || !strings.Contains(out, " 405 ") {
		t.Fatalf("access log missing 404 or 405 status:\n%s", out)
	}
}
