package auth

import (
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d5c5ceb0/polymarket-cli/internal/signer"
	"github.com/d5c5ceb0/polymarket-cli/pkg/types"
	"github.com/d5c5ceb0/polymarket-cli/tests/helpers"
)

func testSigner(t *testing.T) *signer.LocalSigner {
	t.Helper()

	s, err := signer.FromPrivateKey(helpers.TestKey)
	require.NoError(t, err)
	return s.WithChainID(types.ChainIDPolygon)
}

func TestSignL1(t *testing.T) {
	s := testSigner(t)

	t.Run("headers carry address timestamp and nonce", func(t *testing.T) {
		h, err := SignL1(s, 1700000000, 0)
		require.NoError(t, err)

		assert.Equal(t, helpers.TestAddress, h.Address)
		assert.Equal(t, "1700000000", h.Timestamp)
		assert.Equal(t, "0", h.Nonce)
		assert.Len(t, h.Signature, 2+65*2)
	})

	t.Run("signature recovers signer address", func(t *testing.T) {
		h, err := SignL1(s, 1700000000, 7)
		require.NoError(t, err)

		sig, err := hexutil.Decode(h.Signature)
		require.NoError(t, err)
		require.Len(t, sig, 65)
		assert.Contains(t, []byte{27, 28}, sig[64])
		sig[64] -= 27

		hash, err := signer.HashTypedData(ClobAuthTypedData(s.Address(), types.ChainIDPolygon, 1700000000, 7))
		require.NoError(t, err)

		pub, err := crypto.SigToPub(hash, sig)
		require.NoError(t, err)
		assert.Equal(t, s.Address(), crypto.PubkeyToAddress(*pub))
	})

	t.Run("deterministic for same inputs", func(t *testing.T) {
		h1, err := SignL1(s, 1700000000, 1)
		require.NoError(t, err)
		h2, err := SignL1(s, 1700000000, 1)
		require.NoError(t, err)

		assert.Equal(t, h1.Signature, h2.Signature)
	})

	t.Run("nonce changes signature", func(t *testing.T) {
		h1, err := SignL1(s, 1700000000, 1)
		require.NoError(t, err)
		h2, err := SignL1(s, 1700000000, 2)
		require.NoError(t, err)

		assert.NotEqual(t, h1.Signature, h2.Signature)
	})

	t.Run("requires chain id", func(t *testing.T) {
		unbound, err := signer.FromPrivateKey(helpers.TestKey)
		require.NoError(t, err)

		_, err = SignL1(unbound, 1700000000, 0)
		assert.Error(t, err)
	})
}

func TestClobAuthTypedData(t *testing.T) {
	s := testSigner(t)
	td := ClobAuthTypedData(s.Address(), types.ChainIDAmoy, 42, 3)

	assert.Equal(t, "ClobAuth", td.PrimaryType)
	assert.Equal(t, "ClobAuthDomain", td.Domain.Name)
	assert.Equal(t, "1", td.Domain.Version)
	assert.Equal(t, AttestationMessage, td.Message["message"])
	assert.Equal(t, "42", td.Message["timestamp"])
	assert.Equal(t, "3", td.Message["nonce"])

	polygon, err := signer.HashTypedData(ClobAuthTypedData(s.Address(), types.ChainIDPolygon, 42, 3))
	require.NoError(t, err)
	amoy, err := signer.HashTypedData(td)
	require.NoError(t, err)
	assert.NotEqual(t, polygon, amoy)
}

func TestApply(t *testing.T) {
	h, err := SignL1(testSigner(t), 1700000000, 0)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "https://clob.polymarket.com/auth/derive-api-key", nil)
	require.NoError(t, err)
	h.Apply(req)

	assert.Equal(t, helpers.TestAddress, req.Header.Get(HeaderAddress))
	assert.Equal(t, h.Signature, req.Header.Get(HeaderSignature))
	assert.Equal(t, "1700000000", req.Header.Get(HeaderTimestamp))
	assert.Equal(t, "0", req.Header.Get(HeaderNonce))
}
