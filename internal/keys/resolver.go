// Package keys decides which private key is active for an invocation.
//
// Priority is strict: an explicit --private-key flag, then a non-empty
// POLYMARKET_PRIVATE_KEY environment variable, then the config file.
// Values are passed through untouched; the caller validates them, so a
// malformed flag fails loudly instead of falling back to a weaker source.
package keys

import (
	"os"
	"strings"

	"github.com/d5c5ceb0/polymarket-cli/pkg/types"
)

// EnvVar is the environment variable consulted after the flag
const EnvVar = "POLYMARKET_PRIVATE_KEY"

// ConfigLoader loads the persisted credential record.
// ok is false when no usable record exists.
type ConfigLoader interface {
	Load() (cfg *types.Config, ok bool)
}

// Resolver resolves the active key on every call; nothing is cached
type Resolver struct {
	store     ConfigLoader
	lookupEnv func(string) (string, bool)
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLookupEnv replaces os.LookupEnv, mainly for tests
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *Resolver) {
		r.lookupEnv = fn
	}
}

// NewResolver creates a resolver backed by store
func NewResolver(store ConfigLoader, opts ...Option) *Resolver {
	r := &Resolver{
		store:     store,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the effective key and its source.
// flag is nil when --private-key was not given; a non-nil flag wins even if empty or malformed.
func (r *Resolver) Resolve(flag *string) types.ResolvedKey {
	if flag != nil {
		return types.ResolvedKey{Key: *flag, Source: types.KeySourceFlag}
	}

	if key, ok := r.lookupEnv(EnvVar); ok && key != "" {
		return types.ResolvedKey{Key: key, Source: types.KeySourceEnvVar}
	}

	if r.store != nil {
		if cfg, ok := r.store.Load(); ok {
			return types.ResolvedKey{Key: cfg.PrivateKey, Source: types.KeySourceConfigFile}
		}
	}

	return types.ResolvedKey{Source: types.KeySourceNone}
}

// Normalize prefixes key with 0x unless it already carries a 0x or 0X prefix
func Normalize(key string) string {
	if strings.HasPrefix(key, "0x") || strings.HasPrefix(key, "0X") {
		return key
	}
	return "0x" + key
}
