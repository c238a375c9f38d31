package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"twodes/internal/crypto"
)

// HTTP queries a remote oracle served by NewHandler.
type HTTP struct {
	Base   string
	Client *http.Client
}

func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: base, Client: client}
}

func (c *HTTP) Encrypt(ctx context.Context, plaintext uint64) (uint64, error) {
	var out encryptResponse
	if err := c.getJSON(ctx, "/encrypt/"+url.PathEscape(crypto.Hex64(plaintext)), &out); err != nil {
		return 0, err
	}
	ct, err := crypto.ParseHex64(out.Ciphertext)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	return ct, nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("oracle get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
