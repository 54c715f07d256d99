// Package config loads application configuration from environment variables.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/secrets"
)

// Config holds the application configuration loaded from environment variables.
// It is built once at startup and passed to whichever components need it;
// there is no global instance.
type Config struct {
	DBPath         string
	SecretKey      []byte
	BrokerEndpoint string
	SyncInterval   time.Duration
}

// Load reads configuration from environment variables and returns a validated
// Config. AUTOTRADER_SECRET_KEY is required: it must hold a base64-encoded
// 32-byte key, and a missing or malformed value is a fatal configuration
// error. Keys are never generated implicitly, because an ephemeral key would
// orphan every credential encrypted before the restart.
// Optional variables with defaults: AUTOTRADER_DB_PATH (autotrader.db),
// AUTOTRADER_BROKER_ENDPOINT (https://paper-api.example.com),
// AUTOTRADER_SYNC_INTERVAL (1m).
func Load() (*Config, error) {
	rawKey := os.Getenv("AUTOTRADER_SECRET_KEY")
	if rawKey == "" {
		return nil, errors.New("AUTOTRADER_SECRET_KEY is required: provision one with `tradectl genkey`")
	}

	key, err := base64.StdEncoding.DecodeString(rawKey)
	if err != nil {
		return nil, fmt.Errorf("AUTOTRADER_SECRET_KEY is not valid base64: %w", err)
	}
	if len(key) != secrets.KeySize {
		return nil, fmt.Errorf("AUTOTRADER_SECRET_KEY must decode to %d bytes, got %d", secrets.KeySize, len(key))
	}

	dbPath := "autotrader.db"
	if v, ok := os.LookupEnv("AUTOTRADER_DB_PATH"); ok {
		dbPath = v
	}

	brokerEndpoint := "https://paper-api.example.com"
	if v, ok := os.LookupEnv("AUTOTRADER_BROKER_ENDPOINT"); ok {
		brokerEndpoint = v
	}

	syncInterval := time.Minute
	if v, ok := os.LookupEnv("AUTOTRADER_SYNC_INTERVAL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("AUTOTRADER_SYNC_INTERVAL has invalid duration %q: %w", v, err)
		}
		syncInterval = parsed
	}

	return &Config{
		DBPath:         dbPath,
		SecretKey:      key,
		BrokerEndpoint: brokerEndpoint,
		SyncInterval:   syncInterval,
	}, nil
}
