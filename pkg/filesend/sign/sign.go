// Package sign provides an Ed25519 filesend.Cryptographer.
//
// Signed content is the original content followed by the 64-byte signature.
package sign

import (
	"context"
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/ib-77/railway/pkg/filesend"
)

var (
	ErrNoKey          = errors.New("no signing key")
	ErrUnsupportedKey = errors.New("unsupported key type")
	ErrKeyExpired     = errors.New("key expired")
	ErrBadSignature   = errors.New("bad signature")
)

var _ filesend.Cryptographer = (*Ed25519)(nil)

type Ed25519 struct {
	now func() time.Time
}

// NewEd25519 returns a signer that checks certificate expiry against now.
// A nil now means time.Now.
func NewEd25519(now func() time.Time) *Ed25519 {
	if now == nil {
		now = time.Now
	}
	return &Ed25519{now: now}
}

func (s *Ed25519) Sign(_ context.Context, content []byte, cert filesend.Certificate) ([]byte, error) {
	if cert.Key == nil {
		return nil, ErrNoKey
	}
	if _, ok := cert.Key.Public().(ed25519.PublicKey); !ok {
		return nil, fmt.Errorf("%w %T", ErrUnsupportedKey, cert.Key.Public())
	}
	if !cert.NotAfter.IsZero() && s.now().After(cert.NotAfter) {
		return nil, ErrKeyExpired
	}

	sig, err := cert.Key.Sign(rand.Reader, content, crypto.Hash(0))
	if err != nil {
		return nil, err
	}

	signed := make([]byte, 0, len(content)+len(sig))
	signed = append(signed, content...)
	return append(signed, sig...), nil
}

// Verify checks signed against pub and returns the original content.
func Verify(pub ed25519.PublicKey, signed []byte) ([]byte, error) {
	if len(signed) < ed25519.SignatureSize {
		return nil, ErrBadSignature
	}
	content := signed[:len(signed)-ed25519.SignatureSize]
	if !ed25519.Verify(pub, content, signed[len(content):]) {
		return nil, ErrBadSignature
	}
	return content, nil
}

// Certificate builds a filesend.Certificate from a 32-byte Ed25519 seed.
func Certificate(subject string, seed []byte, notAfter time.Time) (filesend.Certificate, error) {
	if len(seed) != ed25519.SeedSize {
		return filesend.Certificate{}, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return filesend.Certificate{
		Subject:  subject,
		NotAfter: notAfter,
		Key:      ed25519.NewKeyFromSeed(seed),
	}, nil
}
