package config

import (
	"time"
)

const (
	// DefaultContentAPIURL is the local-development content API address.
	DefaultContentAPIURL = "http://localhost:3100"
	// DefaultAssetBaseURL is the local-development base for uploaded images.
	DefaultAssetBaseURL = "http://localhost:3001"

	DefaultPageSize = 9
)

// Duration decodes "10s"-style TOML strings.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Database Database
	App      struct {
		Host string
		Port int
	}
	ContentAPI ContentAPI
	Admin      Admin
}

// Database configures the local blog store. The same URL feeds both the
// goose migrator and the go-pg connection.
type Database struct {
	URL             string
	PoolSize        int
	MaxConnLifetime Duration
}

// ContentAPI describes the upstream content service this portal reads from.
type ContentAPI struct {
	// BaseURL of the posts API, DefaultContentAPIURL when empty.
	BaseURL string
	// AssetBaseURL is prepended to relative lead picture paths,
	// DefaultAssetBaseURL when empty.
	AssetBaseURL string
	// Timeout for a single upstream request.
	Timeout Duration
	// PageSize for listing pages, DefaultPageSize when zero.
	PageSize int
}

type Admin struct {
	// Password for the single admin account.
	Password string
	// JWTSecret signs admin session tokens.
	JWTSecret string
	// SessionTTL bounds admin session lifetime.
	SessionTTL Duration
}

func (c ContentAPI) URL() string {
	if c.BaseURL == "" {
		return DefaultContentAPIURL
	}
	return c.BaseURL
}

func (c ContentAPI) AssetURL() string {
	if c.AssetBaseURL == "" {
		return DefaultAssetBaseURL
	}
	return c.AssetBaseURL
}

func (c ContentAPI) Limit() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}
