// Package signer produces request signatures for write-protected API calls.
//
// A client holds exactly one signing capability: either a raw secp256k1
// private key, or an externally supplied signing function (e.g. a custody
// service or hardware wallet). Both sign the exact serialized bytes of the
// message they are given; nothing is memoized because every signed request
// carries a fresh timestamped envelope.
package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrNoSigningCapability is returned when a signed operation is attempted on
// a client that was constructed without a signing key or signing function.
// This is a configuration problem, not a transient fault.
var ErrNoSigningCapability = errors.New("no signing capability configured")

// Signer produces a signature over the exact bytes of a message string.
type Signer interface {
	Sign(ctx context.Context, message string) (string, error)
}

// SignFunc is an externally supplied signing capability. It may suspend on
// network I/O (remote signers); the request pipeline waits for it before
// sending anything.
type SignFunc func(ctx context.Context, message string) (string, error)

// FuncSigner delegates signing to a caller-provided function and returns its
// result verbatim.
type FuncSigner struct {
	fn SignFunc
}

func NewFuncSigner(fn SignFunc) *FuncSigner {
	return &FuncSigner{fn: fn}
}

func (s *FuncSigner) Sign(ctx context.Context, message string) (string, error) {
	if s.fn == nil {
		return "", ErrNoSigningCapability
	}
	return s.fn(ctx, message)
}

// KeySigner signs messages with an in-memory secp256k1 private key using the
// Ethereum personal-message convention: the message is prefixed with
// "\x19Ethereum Signed Message:\n<len>" before hashing and signing.
type KeySigner struct {
	privateKey *ecdsa.PrivateKey
}

// NewKeySigner parses a hex-encoded secp256k1 private key. A leading "0x" is
// accepted and stripped.
func NewKeySigner(hexKey string) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("error loading signing key: %w", err)
	}
	return &KeySigner{privateKey: key}, nil
}

// Sign returns the personal-message signature over message as a 0x-prefixed
// hex string. The recovery byte follows the personal_sign convention (27/28).
// Signing is deterministic: the same message always yields the same signature.
func (s *KeySigner) Sign(_ context.Context, message string) (string, error) {
	hash := accounts.TextHash([]byte(message))
	sig, err := crypto.Sign(hash, s.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

// Address returns the Ethereum address corresponding to the signing key.
// Servers identify the caller by recovering this address from the signature.
func (s *KeySigner) Address() string {
	return crypto.PubkeyToAddress(s.privateKey.PublicKey).Hex()
}
