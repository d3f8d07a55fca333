package app

import (
	"context"

	"github.com/d5c5ceb0/polymarket-cli/internal/keys"
	"github.com/d5c5ceb0/polymarket-cli/internal/logger"
	"github.com/d5c5ceb0/polymarket-cli/internal/signer"
	apperrors "github.com/d5c5ceb0/polymarket-cli/pkg/errors"
	"github.com/d5c5ceb0/polymarket-cli/pkg/types"
)

// KeyStore is the persistence the wallet service needs
type KeyStore interface {
	Locate() (string, error)
	Exists() bool
	Load() (*types.Config, bool)
	Save(key string, chainID uint64) error
}

// WalletService implements the wallet commands over a key store and resolver
type WalletService struct {
	store       KeyStore
	resolver    *keys.Resolver
	chainID     uint64
	generateKey func() (*signer.LocalSigner, error)
}

// Option configures a WalletService
type Option func(*WalletService)

// WithChainID overrides the chain id written to new records
func WithChainID(chainID uint64) Option {
	return func(s *WalletService) {
		s.chainID = chainID
	}
}

// WithKeyGenerator overrides random key generation
func WithKeyGenerator(fn func() (*signer.LocalSigner, error)) Option {
	return func(s *WalletService) {
		s.generateKey = fn
	}
}

// NewWalletService creates a new wallet service
func NewWalletService(store KeyStore, resolver *keys.Resolver, opts ...Option) *WalletService {
	s := &WalletService{
		store:       store,
		resolver:    resolver,
		chainID:     types.ChainIDPolygon,
		generateKey: signer.Random,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WalletResponse is returned by create and import
type WalletResponse struct {
	Address    string `json:"address"`
	ConfigPath string `json:"config_path"`
}

// AddressResponse is returned by address
type AddressResponse struct {
	Address string `json:"address"`
}

// WalletInfo is returned by show
type WalletInfo struct {
	Address    *string         `json:"address"`
	ConfigPath string          `json:"config_path"`
	Source     string          `json:"source"`
	Configured bool            `json:"configured"`
	KeySource  types.KeySource `json:"-"`
}

// CreateWallet generates a fresh key and saves it
func (s *WalletService) CreateWallet(ctx context.Context, force bool) (*WalletResponse, error) {
	if err := s.guardOverwrite(force); err != nil {
		return nil, err
	}

	// Generate the key and bind it to the target chain
	generated, err := s.generateKey()
	if err != nil {
		return nil, err
	}
	wallet := generated.WithChainID(s.chainID)
	address := wallet.Address().Hex()

	if err := s.store.Save(wallet.KeyHex(), s.chainID); err != nil {
		return nil, err
	}

	configPath, err := s.store.Locate()
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "wallet created", "address", address, "config_path", configPath)

	return &WalletResponse{
		Address:    address,
		ConfigPath: configPath,
	}, nil
}

// ImportWallet validates rawKey and saves it in 0x-prefixed form
func (s *WalletService) ImportWallet(ctx context.Context, rawKey string, force bool) (*WalletResponse, error) {
	if err := s.guardOverwrite(force); err != nil {
		return nil, err
	}

	normalized := keys.Normalize(rawKey)
	wallet, err := signer.FromPrivateKey(normalized)
	if err != nil {
		return nil, apperrors.InvalidKeyFormat(err)
	}
	wallet = wallet.WithChainID(s.chainID)
	address := wallet.Address().Hex()

	if err := s.store.Save(normalized, s.chainID); err != nil {
		return nil, err
	}

	configPath, err := s.store.Locate()
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "wallet imported", "address", address, "config_path", configPath)

	return &WalletResponse{
		Address:    address,
		ConfigPath: configPath,
	}, nil
}

// GetAddress derives the address of the active key
func (s *WalletService) GetAddress(ctx context.Context, privateKeyFlag *string) (*AddressResponse, error) {
	wallet, err := s.resolveSigner(ctx, privateKeyFlag)
	if err != nil {
		return nil, err
	}

	return &AddressResponse{Address: wallet.Address().Hex()}, nil
}

// ShowWallet reports the active address, config path and key source.
// A missing or unusable key is reported, not returned as an error.
func (s *WalletService) ShowWallet(ctx context.Context, privateKeyFlag *string) (*WalletInfo, error) {
	resolved := s.resolver.Resolve(privateKeyFlag)

	var address *string
	if resolved.Found() {
		if wallet, err := signer.FromPrivateKey(resolved.Key); err == nil {
			addr := wallet.Address().Hex()
			address = &addr
		} else {
			logger.Debug(ctx, "active key is not usable", "source", resolved.Source.String(), "error", err)
		}
	}

	configPath, err := s.store.Locate()
	if err != nil {
		return nil, err
	}

	return &WalletInfo{
		Address:    address,
		ConfigPath: configPath,
		Source:     resolved.Source.Label(),
		Configured: address != nil,
		KeySource:  resolved.Source,
	}, nil
}

// Signer returns the active key as a signer bound to the service's chain,
// for callers that authenticate against the exchange.
func (s *WalletService) Signer(ctx context.Context, privateKeyFlag *string) (*signer.LocalSigner, error) {
	wallet, err := s.resolveSigner(ctx, privateKeyFlag)
	if err != nil {
		return nil, err
	}
	return wallet.WithChainID(s.chainID), nil
}

func (s *WalletService) resolveSigner(ctx context.Context, privateKeyFlag *string) (*signer.LocalSigner, error) {
	resolved := s.resolver.Resolve(privateKeyFlag)
	if !resolved.Found() {
		return nil, apperrors.NoWalletConfigured()
	}

	logger.Debug(ctx, "resolved private key", "source", resolved.Source.String())

	wallet, err := signer.FromPrivateKey(resolved.Key)
	if err != nil {
		return nil, apperrors.InvalidKeyFormat(err)
	}
	return wallet, nil
}

// guardOverwrite refuses to replace an existing record unless force is set
func (s *WalletService) guardOverwrite(force bool) error {
	if force || !s.store.Exists() {
		return nil
	}
	path, err := s.store.Locate()
	if err != nil {
		return err
	}
	return apperrors.OverwriteRefused(path)
}
