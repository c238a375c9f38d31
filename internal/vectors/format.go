package vectors

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"twodes/internal/crypto"
	"twodes/internal/domain"
)

// ErrBadLine is returned for text lines that are not "<hex> <hex>".
var ErrBadLine = errors.New("malformed vector line")

type jsonVector struct {
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
}

type jsonCorpus struct {
	Key     string       `json:"key,omitempty"`
	Vectors []jsonVector `json:"vectors"`
}

func encodeJSON(c domain.Corpus) ([]byte, error) {
	jc := jsonCorpus{Vectors: make([]jsonVector, len(c.Vectors))}
	if c.Key != 0 {
		jc.Key = crypto.Hex64(c.Key)
	}
	for i, v := range c.Vectors {
		jc.Vectors[i] = jsonVector{Plaintext: crypto.Hex64(v.Plaintext), Ciphertext: crypto.Hex64(v.Ciphertext)}
	}
	return json.MarshalIndent(jc, "", "  ")
}

func decodeJSON(b []byte) (domain.Corpus, error) {
	var jc jsonCorpus
	if err := json.Unmarshal(b, &jc); err != nil {
		return domain.Corpus{}, err
	}
	var c domain.Corpus
	if jc.Key != "" {
		k, err := crypto.ParseHex64(jc.Key)
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("key: %w", err)
		}
		c.Key = k
	}
	c.Vectors = make([]domain.Vector, len(jc.Vectors))
	for i, v := range jc.Vectors {
		p, err := crypto.ParseHex64(v.Plaintext)
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("vector %d: %w", i, err)
		}
		ct, err := crypto.ParseHex64(v.Ciphertext)
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("vector %d: %w", i, err)
		}
		c.Vectors[i] = domain.Vector{Plaintext: p, Ciphertext: ct}
	}
	return c, nil
}

func encodeText(c domain.Corpus) []byte {
	var buf bytes.Buffer
	if c.Key != 0 {
		fmt.Fprintf(&buf, "# key %s\n", crypto.Hex64(c.Key))
	}
	for _, v := range c.Vectors {
		fmt.Fprintf(&buf, "%s %s\n", crypto.Hex64(v.Plaintext), crypto.Hex64(v.Ciphertext))
	}
	return buf.Bytes()
}

func decodeText(b []byte) (domain.Corpus, error) {
	var c domain.Corpus
	sc := bufio.NewScanner(bytes.NewReader(b))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			f := strings.Fields(strings.TrimPrefix(line, "#"))
			if len(f) == 2 && f[0] == "key" {
				k, err := crypto.ParseHex64(f[1])
				if err != nil {
					return domain.Corpus{}, fmt.Errorf("line %d: %w", n, err)
				}
				c.Key = k
			}
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return domain.Corpus{}, fmt.Errorf("%w: line %d", ErrBadLine, n)
		}
		p, err := crypto.ParseHex64(f[0])
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("%w: line %d: %v", ErrBadLine, n, err)
		}
		ct, err := crypto.ParseHex64(f[1])
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("%w: line %d: %v", ErrBadLine, n, err)
		}
		c.Vectors = append(c.Vectors, domain.Vector{Plaintext: p, Ciphertext: ct})
	}
	return c, sc.Err()
}
