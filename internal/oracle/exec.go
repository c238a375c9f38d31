package oracle

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"twodes/internal/crypto"
)

// ErrBadOutput is returned when an oracle answers with something that is not
// a hex block.
var ErrBadOutput = errors.New("oracle returned malformed ciphertext")

// Exec runs an external encryption program once per block. The plaintext is
// passed as the last argument in unpadded hex; the ciphertext is read from the
// first line of standard output.
type Exec struct {
	Path string
	Args []string
}

func (e Exec) Encrypt(ctx context.Context, plaintext uint64) (uint64, error) {
	args := append(append([]string(nil), e.Args...), strconv.FormatUint(plaintext, 16))
	cmd := exec.CommandContext(ctx, e.Path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return 0, fmt.Errorf("run %s: %w: %s", e.Path, err, bytes.TrimSpace(stderr.Bytes()))
		}
		return 0, fmt.Errorf("run %s: %w", e.Path, err)
	}

	sc := bufio.NewScanner(bytes.NewReader(out))
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: no output from %s", ErrBadOutput, e.Path)
	}
	c, err := crypto.ParseHex64(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	return c, nil
}
