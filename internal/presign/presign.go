package presign

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultObject is the shared audio clips archive exposed to test plans.
const DefaultObject = "s3://lava-test-plans/assets/audio-clips.tar.gz"

const (
	defaultExpiry  = time.Hour
	defaultTimeout = 30 * time.Second
)

// Signer mints pre-signed object storage URLs by shelling out to the aws
// CLI. Authentication is entirely the CLI's concern; no credentials pass
// through this package.
type Signer struct {
	Object  string        // s3://bucket/key to sign
	Expiry  time.Duration // lifetime of the minted URL
	Timeout time.Duration // bound on the CLI invocation

	command string
}

// New returns a Signer for the given object, falling back to DefaultObject
// and the default expiry when the arguments are zero.
func New(object string, expiry time.Duration) *Signer {
	if object == "" {
		object = DefaultObject
	}
	if expiry <= 0 {
		expiry = defaultExpiry
	}

	return &Signer{
		Object:  object,
		Expiry:  expiry,
		Timeout: defaultTimeout,
		command: "aws",
	}
}

// URL invokes `aws s3 presign` and returns the minted URL with surrounding
// whitespace stripped. ok is false for every failure mode: non-zero exit,
// timeout, missing binary, or any other invocation error. A failed call
// never yields a partial URL.
func (s *Signer) URL(ctx context.Context) (url string, ok bool) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	expires := strconv.Itoa(int(s.Expiry / time.Second))
	cmd := exec.CommandContext(ctx, s.command, "s3", "presign", s.Object, "--expires-in", expires)

	out, err := cmd.Output()
	if err != nil {
		log.Debug().Err(err).Str("object", s.Object).Msg("presign failed")
		return "", false
	}

	return strings.TrimSpace(string(out)), true
}
