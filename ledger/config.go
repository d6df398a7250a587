package ledger

import (
	"fmt"
	"time"
)

// DefaultURL is the ledger endpoint used when nothing else is configured.
const DefaultURL = "http://localhost:8080"

// DefaultTimeout bounds each RPC call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Config holds the connection parameters for the ledger's JSON-RPC endpoint.
type Config struct {
	URL     string        `json:"url"`
	Timeout time.Duration `json:"timeout"`
}

// ResolveConfig merges ledger configuration from three sources with
// decreasing priority:
//  1. CLI flags (highest priority)
//  2. Environment variables (SHIELD_API_URL, SHIELD_RPC_TIMEOUT)
//  3. Built-in defaults
func ResolveConfig(flags *Config, env map[string]string) (*Config, error) {
	result := Config{URL: DefaultURL, Timeout: DefaultTimeout}

	if env != nil {
		if v, ok := env["SHIELD_API_URL"]; ok && v != "" {
			result.URL = v
		}
		if v, ok := env["SHIELD_RPC_TIMEOUT"]; ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("ledger: SHIELD_RPC_TIMEOUT: %w", err)
			}
			result.Timeout = d
		}
	}

	if flags != nil {
		if flags.URL != "" {
			result.URL = flags.URL
		}
		if flags.Timeout > 0 {
			result.Timeout = flags.Timeout
		}
	}

	if result.Timeout <= 0 {
		return nil, fmt.Errorf("ledger: timeout must be positive, got %s", result.Timeout)
	}
	return &result, nil
}
