// Package auth builds level-1 authentication headers for the Polymarket CLOB.
//
// Level-1 auth proves control of a wallet by signing the EIP-712 ClobAuth
// message. The exchange uses it to create or derive API credentials; the
// network exchange itself lives outside this package.
package auth

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/d5c5ceb0/polymarket-cli/internal/signer"
)

// Header names sent with level-1 authenticated requests
const (
	HeaderAddress   = "POLY_ADDRESS"
	HeaderSignature = "POLY_SIGNATURE"
	HeaderTimestamp = "POLY_TIMESTAMP"
	HeaderNonce     = "POLY_NONCE"
)

const (
	domainName    = "ClobAuthDomain"
	domainVersion = "1"

	// AttestationMessage is the fixed text embedded in every ClobAuth message
	AttestationMessage = "This message attests that I control the given wallet"
)

// L1Headers is a signed set of level-1 auth headers
type L1Headers struct {
	Address   string `json:"POLY_ADDRESS"`
	Signature string `json:"POLY_SIGNATURE"`
	Timestamp string `json:"POLY_TIMESTAMP"`
	Nonce     string `json:"POLY_NONCE"`
}

// ClobAuthTypedData returns the EIP-712 ClobAuth payload
func ClobAuthTypedData(address common.Address, chainID uint64, timestamp int64, nonce uint64) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"ClobAuth": {
				{Name: "address", Type: "address"},
				{Name: "timestamp", Type: "string"},
				{Name: "nonce", Type: "uint256"},
				{Name: "message", Type: "string"},
			},
		},
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    domainName,
			Version: domainVersion,
			ChainId: (*math.HexOrDecimal256)(new(big.Int).SetUint64(chainID)),
		},
		Message: apitypes.TypedDataMessage{
			"address":   address.Hex(),
			"timestamp": strconv.FormatInt(timestamp, 10),
			"nonce":     strconv.FormatUint(nonce, 10),
			"message":   AttestationMessage,
		},
	}
}

// SignL1 signs the ClobAuth message for s at timestamp (unix seconds) and nonce
func SignL1(s signer.Signer, timestamp int64, nonce uint64) (*L1Headers, error) {
	if s.ChainID() == 0 {
		return nil, fmt.Errorf("signer has no chain id")
	}

	address := s.Address()
	signature, err := s.SignTypedData(ClobAuthTypedData(address, s.ChainID(), timestamp, nonce))
	if err != nil {
		return nil, fmt.Errorf("failed to sign ClobAuth message: %w", err)
	}

	return &L1Headers{
		Address:   address.Hex(),
		Signature: signer.FormatSignature(signature),
		Timestamp: strconv.FormatInt(timestamp, 10),
		Nonce:     strconv.FormatUint(nonce, 10),
	}, nil
}

// Apply sets the headers on an outgoing request
func (h *L1Headers) Apply(r *http.Request) {
	r.Header.Set(HeaderAddress, h.Address)
	r.Header.Set(HeaderSignature, h.Signature)
	r.Header.Set(HeaderTimestamp, h.Timestamp)
	r.Header.Set(HeaderNonce, h.Nonce)
}
