package checksum

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Calculator computes a digest of raw, unmodified content.
type Calculator interface {
	// Algorithm returns the key BitBake expects in front of the digest.
	Algorithm() string

	// Calculate returns the lowercase hex digest of content.
	Calculate(content []byte) string
}

// MD5 is the classic LIC_FILES_CHKSUM digest.
type MD5 struct{}

func (MD5) Algorithm() string { return "md5" }

func (MD5) Calculate(content []byte) string {
	hash := md5.Sum(content)
	return hex.EncodeToString(hash[:])
}

// SHA256 is accepted by BitBake as an alternative to md5.
type SHA256 struct{}

func (SHA256) Algorithm() string { return "sha256" }

func (SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// New returns the calculator for the named algorithm.
// An empty name selects bbgen.DefaultChecksumAlgorithm.
func New(algorithm string) (Calculator, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", "md5":
		return MD5{}, nil
	case "sha256":
		return SHA256{}, nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm %q (supported: md5, sha256): %w", algorithm, bbgen.ErrInvalidConfig)
	}
}
