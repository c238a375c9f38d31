package vectors

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"

	"twodes/internal/domain"
)

// Save writes c to path in the format implied by its name.
func Save(path string, c domain.Corpus) error {
	inner, compressed := splitLZ4(path)

	var b []byte
	if strings.EqualFold(filepath.Ext(inner), ".json") {
		var err error
		if b, err = encodeJSON(c); err != nil {
			return err
		}
	} else {
		b = encodeText(c)
	}

	if compressed {
		var err error
		if b, err = compress(b); err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
	}
	return writeFile(path, b, 0o644)
}

// Load reads a corpus written by Save, or any text file of "<pt> <ct>" lines.
func Load(path string) (domain.Corpus, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Corpus{}, err
	}
	inner, compressed := splitLZ4(path)
	if compressed {
		if b, err = decompress(b); err != nil {
			return domain.Corpus{}, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	if strings.EqualFold(filepath.Ext(inner), ".json") {
		return decodeJSON(b)
	}
	return decodeText(b)
}

func splitLZ4(path string) (inner string, compressed bool) {
	if strings.EqualFold(filepath.Ext(path), ".lz4") {
		return strings.TrimSuffix(path, filepath.Ext(path)), true
	}
	return path, false
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if err := w.Apply(lz4.CompressionLevelOption(lz4.Level4)); err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, lz4.NewReader(bytes.NewReader(data))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
