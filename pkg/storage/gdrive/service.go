// Package gdrive implements the storage provider on top of the Google
// Drive v3 API using OAuth2 refresh-token credentials.
package gdrive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// tokenURI is the Google OAuth2 token endpoint.
const tokenURI = "https://oauth2.googleapis.com/token"

// Config contains the OAuth2 credentials for the Drive account.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Service wraps the Drive API client.
type Service struct {
	Drive *drive.Service
}

// New creates a Drive service authenticated with the configured refresh
// token. The token source refreshes access tokens on demand.
func New(ctx context.Context, cfg Config) (*Service, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: tokenURI,
		},
		Scopes: []string{drive.DriveScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
	})

	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("error creating Drive service: %w", err)
	}

	return &Service{Drive: svc}, nil
}
