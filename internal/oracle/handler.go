package oracle

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"twodes/internal/crypto"
	"twodes/internal/des"
)

type encryptResponse struct {
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
}

// NewHandler returns a router that encrypts chosen plaintexts under key.
func NewHandler(key uint64) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/encrypt/{plaintext}", func(w http.ResponseWriter, req *http.Request) {
		p, err := crypto.ParseHex64(mux.Vars(req)["plaintext"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(encryptResponse{
			Plaintext:  crypto.Hex64(p),
			Ciphertext: crypto.Hex64(des.EncryptBlock(key, p)),
		})
	}).Methods(http.MethodGet)
	return r
}
