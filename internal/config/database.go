package config

import (
	"fmt"

	"clinic-cms/internal/infrastructure/database"
)

// LoadDatabaseConfig chuyển RemoteStoreConfig sang DBConfig cho pgxpool
func (r RemoteStoreConfig) LoadDatabaseConfig() (*database.DBConfig, error) {
	if !r.Configured() {
		return nil, fmt.Errorf("remote store is not configured: REMOTE_STORE_URL and REMOTE_STORE_KEY are required")
	}
	if r.MaxConns < 1 {
		return nil, fmt.Errorf("invalid REMOTE_STORE_MAX_CONNS: %d", r.MaxConns)
	}
	if r.MaxRetries < 1 {
		return nil, fmt.Errorf("invalid REMOTE_STORE_MAX_RETRIES: %d", r.MaxRetries)
	}

	return &database.DBConfig{
		Endpoint:          r.Endpoint,
		AccessKey:         r.AccessKey,
		MaxConns:          int32(r.MaxConns),
		MinConns:          int32(r.MinConns),
		MaxConnLifetime:   r.MaxConnLifetime,
		MaxConnIdleTime:   r.MaxConnIdleTime,
		HealthCheckPeriod: r.HealthCheckPeriod,
		MaxRetries:        r.MaxRetries,
		RetryDelay:        r.RetryDelay,
		ConnectTimeout:    r.ConnectTimeout,
	}, nil
}
