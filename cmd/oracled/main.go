package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"twodes/internal/crypto"
	"twodes/internal/des"
	"twodes/internal/oracle"
)

func main() {
	keyHex := pflag.String("key", getEnv("ORACLE_KEY", "33333333333333"), "secret 56-bit key in hex")
	addr := pflag.String("addr", getEnv("ORACLE_ADDR", ":8080"), "listen address")
	pflag.Parse()

	key, err := crypto.ParseHex64(*keyHex)
	if err != nil {
		log.Fatalf("invalid key: %v", err)
	}
	key &= des.Mask56

	srv := &http.Server{
		Addr:              *addr,
		Handler:           accessLog(oracle.NewHandler(key)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("oracle listening on %s (key fingerprint %s)", *addr, crypto.Fingerprint(key))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("oracle stopped")
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %s %d %v", r.Method, r.URL.Path, r.RemoteAddr, rec.status, time.Since(start))
	})
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
