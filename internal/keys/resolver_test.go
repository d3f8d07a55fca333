package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d5c5ceb0/polymarket-cli/pkg/types"
)

type fakeStore struct {
	cfg   *types.Config
	loads int
}

func (f *fakeStore) Load() (*types.Config, bool) {
	f.loads++
	if f.cfg == nil {
		return nil, false
	}
	return f.cfg, true
}

func env(values map[string]string) Option {
	return WithLookupEnv(func(k string) (string, bool) {
		v, ok := values[k]
		return v, ok
	})
}

func strPtr(s string) *string { return &s }

func TestResolve_Precedence(t *testing.T) {
	fileCfg := &types.Config{PrivateKey: "0xCC", ChainID: types.ChainIDPolygon}

	tests := []struct {
		name       string
		flag       *string
		env        map[string]string
		file       *types.Config
		wantKey    string
		wantSource types.KeySource
	}{
		{
			name:       "flag beats env and file",
			flag:       strPtr("0xAA"),
			env:        map[string]string{EnvVar: "0xBB"},
			file:       fileCfg,
			wantKey:    "0xAA",
			wantSource: types.KeySourceFlag,
		},
		{
			name:       "env beats file",
			env:        map[string]string{EnvVar: "0xBB"},
			file:       fileCfg,
			wantKey:    "0xBB",
			wantSource: types.KeySourceEnvVar,
		},
		{
			name:       "empty env falls through to file",
			env:        map[string]string{EnvVar: ""},
			file:       fileCfg,
			wantKey:    "0xCC",
			wantSource: types.KeySourceConfigFile,
		},
		{
			name:       "unset env falls through to file",
			file:       fileCfg,
			wantKey:    "0xCC",
			wantSource: types.KeySourceConfigFile,
		},
		{
			name:       "env only",
			env:        map[string]string{EnvVar: "0xBB"},
			wantKey:    "0xBB",
			wantSource: types.KeySourceEnvVar,
		},
		{
			name:       "malformed flag still wins",
			flag:       strPtr("not-a-key"),
			env:        map[string]string{EnvVar: "0xBB"},
			file:       fileCfg,
			wantKey:    "not-a-key",
			wantSource: types.KeySourceFlag,
		},
		{
			name:       "empty flag still wins",
			flag:       strPtr(""),
			file:       fileCfg,
			wantKey:    "",
			wantSource: types.KeySourceFlag,
		},
		{
			name:       "nothing configured",
			env:        map[string]string{EnvVar: ""},
			wantKey:    "",
			wantSource: types.KeySourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(&fakeStore{cfg: tt.file}, env(tt.env))

			got := r.Resolve(tt.flag)

			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestResolve_SkipsStoreWhenHigherSourceWins(t *testing.T) {
	store := &fakeStore{cfg: &types.Config{PrivateKey: "0xCC"}}
	r := NewResolver(store, env(map[string]string{EnvVar: "0xBB"}))

	r.Resolve(strPtr("0xAA"))
	r.Resolve(nil)

	assert.Equal(t, 0, store.loads)
}

func TestResolve_RecomputesEachCall(t *testing.T) {
	values := map[string]string{EnvVar: "0xBB"}
	store := &fakeStore{cfg: &types.Config{PrivateKey: "0xCC"}}
	r := NewResolver(store, env(values))

	assert.Equal(t, types.KeySourceEnvVar, r.Resolve(nil).Source)

	delete(values, EnvVar)
	assert.Equal(t, types.KeySourceConfigFile, r.Resolve(nil).Source)

	store.cfg = nil
	assert.Equal(t, types.KeySourceNone, r.Resolve(nil).Source)
}

func TestResolve_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "0xDD")

	got := NewResolver(&fakeStore{}).Resolve(nil)

	assert.Equal(t, types.ResolvedKey{Key: "0xDD", Source: types.KeySourceEnvVar}, got)
}

func TestNormalize(t *testing.T) {
	body := strings.Repeat("ab", 32)

	tests := []struct {
		in   string
		want string
	}{
		{in: body, want: "0x" + body},
		{in: "0x" + body, want: "0x" + body},
		{in: "0X" + body, want: "0X" + body},
		{in: "", want: "0x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}

	assert.Equal(t, Normalize(body), Normalize(Normalize(body)))
}
