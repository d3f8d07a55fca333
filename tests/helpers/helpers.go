// Package helpers provides common test utilities for the polymarket-cli test suite.
package helpers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known development key vectors (hardhat/anvil default accounts #0 and #1).
const (
	TestKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	TestKeyBare = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	TestAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	OtherKey     = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	OtherAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

// TempHome returns a home directory lookup rooted at a fresh temporary directory.
func TempHome(t *testing.T) (string, func() (string, error)) {
	t.Helper()

	home := t.TempDir()
	return home, func() (string, error) { return home, nil }
}

// NoHome is a home directory lookup that always fails.
func NoHome() (string, error) {
	return "", errors.New("$HOME is not defined")
}

// ConfigPath returns the config file path under home.
func ConfigPath(home string) string {
	return filepath.Join(home, ".config", "polymarket", "config.json")
}

// WriteRawConfig writes content verbatim to the config file under home.
func WriteRawConfig(t *testing.T, home, content string) string {
	t.Helper()

	path := ConfigPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// NoEnv is an environment lookup that reports every variable as unset.
func NoEnv(string) (string, bool) {
	return "", false
}

// Env returns an environment lookup backed by values.
func Env(values map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := values[k]
		return v, ok
	}
}
