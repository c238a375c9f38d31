package app

import (
	"errors"
	"net/http"

	"twodes/internal/domain"
	"twodes/internal/oracle"
)

// ErrOracleConflict is returned when both an external program and a service URL
// are configured.
var ErrOracleConflict = errors.New("choose either an oracle program or an oracle URL, not both")

// Wire bundles the oracles the CLI works with.
type Wire struct {
	// Reference always encrypts in-process under Config.Key.
	Reference oracle.Reference
	// Oracle is the configured oracle under test. It is Reference when neither
	// OracleBin nor OracleURL is set.
	Oracle domain.Oracle
	// External reports whether Oracle is something other than Reference.
	External bool
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.OracleBin != "" && cfg.OracleURL != "" {
		return nil, ErrOracleConflict
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	w := &Wire{Reference: oracle.Reference{Key: cfg.Key}, HTTP: httpClient}
	switch {
	case cfg.OracleBin != "":
		w.Oracle, w.External = oracle.Exec{Path: cfg.OracleBin}, true
	case cfg.OracleURL != "":
		w.Oracle, w.External = oracle.NewHTTP(cfg.OracleURL, httpClient), true
	default:
		w.Oracle = w.Reference
	}
	return w, nil
}
