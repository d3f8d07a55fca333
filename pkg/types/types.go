package types

// Chain ID constants
const (
	ChainIDPolygon uint64 = 137
	ChainIDAmoy    uint64 = 80002
)

// Config is the credential record persisted to the config file
type Config struct {
	PrivateKey string `json:"private_key"`
	ChainID    uint64 `json:"chain_id"`
}

// KeySource identifies where the active private key came from
type KeySource int

// KeySource values, in resolution priority order
const (
	KeySourceNone KeySource = iota
	KeySourceFlag
	KeySourceEnvVar
	KeySourceConfigFile
)

// Label returns the human-readable description shown by `wallet show`
func (s KeySource) Label() string {
	switch s {
	case KeySourceFlag:
		return "--private-key flag"
	case KeySourceEnvVar:
		return "POLYMARKET_PRIVATE_KEY env var"
	case KeySourceConfigFile:
		return "config file"
	case KeySourceNone:
		return "not configured"
	default:
		return "unknown"
	}
}

func (s KeySource) String() string {
	switch s {
	case KeySourceFlag:
		return "flag"
	case KeySourceEnvVar:
		return "env"
	case KeySourceConfigFile:
		return "config"
	case KeySourceNone:
		return "none"
	default:
		return "unknown"
	}
}

// ResolvedKey is the outcome of a single key resolution
// Key is empty only when Source is KeySourceNone.
type ResolvedKey struct {
	Key    string
	Source KeySource
}

// Found reports whether any source supplied a key
func (r ResolvedKey) Found() bool {
	return r.Source != KeySourceNone
}
