// Package config loads the service configuration from an HCL file with
// environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Default server listen address.
const defaultListenAddr = "127.0.0.1:8000"

// Config is the server configuration.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `hcl:"listen_addr,optional"`

	// APIKey is the static bearer token clients must present.
	// Override: IRONLOG_API_KEY.
	APIKey string `hcl:"api_key,optional"`

	// GDrive configures the Google Drive backend.
	GDrive *GDrive `hcl:"gdrive,block"`
}

// GDrive contains the Drive folder and OAuth2 credentials.
type GDrive struct {
	// FolderID is the Drive folder holding all log documents.
	// Override: IRONLOG_DRIVE_FOLDER_ID.
	FolderID string `hcl:"folder_id,optional"`

	// ClientID is the OAuth2 client ID.
	// Override: IRONLOG_DRIVE_CLIENT_ID.
	ClientID string `hcl:"client_id,optional"`

	// ClientSecret is the OAuth2 client secret.
	// Override: IRONLOG_DRIVE_CLIENT_SECRET.
	ClientSecret string `hcl:"client_secret,optional"`

	// RefreshToken is the OAuth2 refresh token for the Drive account.
	// Override: IRONLOG_DRIVE_REFRESH_TOKEN.
	RefreshToken string `hcl:"refresh_token,optional"`
}

// NewConfig parses the config file at path, applies environment
// overrides, and fills defaults. An empty path starts from an empty
// config so the service can be configured entirely from the environment.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if cfg.GDrive == nil {
		cfg.GDrive = &GDrive{}
	}

	applyEnvOverride(&cfg.APIKey, "IRONLOG_API_KEY")
	applyEnvOverride(&cfg.GDrive.FolderID, "IRONLOG_DRIVE_FOLDER_ID")
	applyEnvOverride(&cfg.GDrive.ClientID, "IRONLOG_DRIVE_CLIENT_ID")
	applyEnvOverride(&cfg.GDrive.ClientSecret, "IRONLOG_DRIVE_CLIENT_SECRET")
	applyEnvOverride(&cfg.GDrive.RefreshToken, "IRONLOG_DRIVE_REFRESH_TOKEN")

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	return cfg, nil
}

// Validate checks that all required settings are present, aggregating
// every missing one into a single error.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.APIKey == "" {
		result = multierror.Append(result,
			fmt.Errorf("api_key (or IRONLOG_API_KEY) is required"))
	}
	if c.GDrive.FolderID == "" {
		result = multierror.Append(result,
			fmt.Errorf("gdrive folder_id (or IRONLOG_DRIVE_FOLDER_ID) is required"))
	}
	if c.GDrive.ClientID == "" {
		result = multierror.Append(result,
			fmt.Errorf("gdrive client_id (or IRONLOG_DRIVE_CLIENT_ID) is required"))
	}
	if c.GDrive.ClientSecret == "" {
		result = multierror.Append(result,
			fmt.Errorf("gdrive client_secret (or IRONLOG_DRIVE_CLIENT_SECRET) is required"))
	}
	if c.GDrive.RefreshToken == "" {
		result = multierror.Append(result,
			fmt.Errorf("gdrive refresh_token (or IRONLOG_DRIVE_REFRESH_TOKEN) is required"))
	}

	return result.ErrorOrNil()
}

func applyEnvOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
