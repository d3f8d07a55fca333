package signer

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Signer is the capability the CLI needs from key material
type Signer interface {
	// Address returns the checksummed address derived from the key
	Address() common.Address

	// ChainID returns the chain the signer is bound to, zero if unbound
	ChainID() uint64

	// SignHash signs a pre-hashed 32-byte value
	SignHash(hash []byte) ([]byte, error)

	// SignTypedData signs EIP-712 typed data
	SignTypedData(typedData apitypes.TypedData) ([]byte, error)
}

// LocalSigner holds a secp256k1 private key in memory
type LocalSigner struct {
	key     *ecdsa.PrivateKey
	chainID uint64
}

var _ Signer = (*LocalSigner)(nil)

// Random generates a signer around a fresh private key
func Random() (*LocalSigner, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return &LocalSigner{key: privateKey}, nil
}

// FromPrivateKey parses a hex private key, with or without a 0x prefix
func FromPrivateKey(hexKey string) (*LocalSigner, error) {
	stripped := hexKey
	if strings.HasPrefix(stripped, "0x") || strings.HasPrefix(stripped, "0X") {
		stripped = stripped[2:]
	}
	privateKey, err := crypto.HexToECDSA(stripped)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return &LocalSigner{key: privateKey}, nil
}

// WithChainID returns a copy of the signer bound to chainID
func (s *LocalSigner) WithChainID(chainID uint64) *LocalSigner {
	return &LocalSigner{key: s.key, chainID: chainID}
}

// ChainID returns the bound chain id
func (s *LocalSigner) ChainID() uint64 {
	return s.chainID
}

// Address derives the Ethereum address from the private key
func (s *LocalSigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

// KeyBytes returns the raw 32-byte private key
func (s *LocalSigner) KeyBytes() []byte {
	return crypto.FromECDSA(s.key)
}

// KeyHex returns the private key as 0x-prefixed lowercase hex
func (s *LocalSigner) KeyHex() string {
	b := s.KeyBytes()
	defer zero(b)
	return "0x" + hex.EncodeToString(b)
}

// SignHash signs a 32-byte hash, returning a 65-byte [R || S || V] signature with V in {0, 1}
func (s *LocalSigner) SignHash(hash []byte) ([]byte, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("hash must be exactly 32 bytes, got %d", len(hash))
	}
	signature, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign hash: %w", err)
	}
	return signature, nil
}

// SignTypedData signs EIP-712 typed data with V in {27, 28}
func (s *LocalSigner) SignTypedData(typedData apitypes.TypedData) ([]byte, error) {
	hash, err := HashTypedData(typedData)
	if err != nil {
		return nil, err
	}
	signature, err := s.SignHash(hash)
	if err != nil {
		return nil, err
	}
	signature[crypto.RecoveryIDOffset] += 27
	return signature, nil
}

// HashTypedData computes the EIP-712 digest of typed data
func HashTypedData(typedData apitypes.TypedData) ([]byte, error) {
	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return nil, fmt.Errorf("failed to hash domain: %w", err)
	}

	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to hash message: %w", err)
	}

	// keccak256("\x19\x01" || domainSeparator || hashStruct(message))
	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash)))
	return crypto.Keccak256(rawData), nil
}

// FormatSignature formats a signature as a 0x-prefixed hex string
func FormatSignature(signature []byte) string {
	return "0x" + hex.EncodeToString(signature)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
