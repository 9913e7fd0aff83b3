package config

import (
	"fmt"
	"net/url"
)

// AssetLedgerConfig points at the upstream asset ledger service. The local
// balance mirror is authoritative for transactional reads; the HTTP client
// is only used to backfill accounts the mirror has not seen yet.
type AssetLedgerConfig struct {
	Host    string `mapstructure:"host"`
	Timeout int    `mapstructure:"timeout"`
}

func (cfg *AssetLedgerConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("missing asset ledger host")
	}

	parsedUrl, err := url.ParseRequestURI(cfg.Host)
	if err != nil {
		return fmt.Errorf("invalid asset ledger host: %w", err)
	}

	if parsedUrl.Scheme != "http" && parsedUrl.Scheme != "https" {
		return fmt.Errorf("asset ledger host must be http or https")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("asset ledger timeout must be a positive integer")
	}

	return nil
}
