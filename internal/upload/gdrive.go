package upload

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/corvid-tools/breachcore/internal/config"
	"github.com/corvid-tools/breachcore/internal/credstore"
)

const (
	gdriveRefreshTokenSecret = "gdrive-refresh-token"
	gdriveClientIDSecret     = "gdrive-client-id"
	gdriveClientSecretSecret = "gdrive-client-secret"
)

// gdriveOAuthConfig is the installed-app OAuth2 client used to refresh
// the stored token. The client ID/secret are not themselves secret for
// installed apps, but are still kept out of source and loaded lazily
// from credstore rather than hardcoded.
var gdriveOAuthConfig *oauth2.Config

// ConfigureOAuth sets the OAuth2 client used to refresh Google Drive
// tokens explicitly. Tests and callers that already have the client
// ID/secret in hand can use this instead of letting GDrive load them
// from credstore on first use.
func ConfigureOAuth(clientID, clientSecret string) {
	gdriveOAuthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: "https://oauth2.googleapis.com/token"},
		Scopes:       []string{drive.DriveFileScope},
	}
}

// ensureOAuthConfigured loads the OAuth2 client ID/secret from
// credstore the first time GDrive is called, so callers don't have to
// plumb them through a separate startup step.
func ensureOAuthConfigured() error {
	if gdriveOAuthConfig != nil {
		return nil
	}
	clientID, ok, err := credstore.Get(gdriveClientIDSecret)
	if err != nil {
		return fmt.Errorf("upload: read GDrive client ID: %w", err)
	}
	if !ok {
		return fmt.Errorf("upload: no GDrive client ID stored")
	}
	clientSecret, ok, err := credstore.Get(gdriveClientSecretSecret)
	if err != nil {
		return fmt.Errorf("upload: read GDrive client secret: %w", err)
	}
	if !ok {
		return fmt.Errorf("upload: no GDrive client secret stored")
	}
	ConfigureOAuth(clientID, clientSecret)
	return nil
}

// GDrive uploads data as name into the configured Drive folder and
// returns the created file's ID.
func GDrive(ctx context.Context, cfg config.GDriveConfig, name string, data []byte) (string, error) {
	if cfg.FolderID == "" {
		return "", fmt.Errorf("upload: GDrive is not configured")
	}
	if err := ensureOAuthConfigured(); err != nil {
		return "", err
	}

	refreshToken, ok, err := credstore.Get(gdriveRefreshTokenSecret)
	if err != nil {
		return "", fmt.Errorf("upload: read GDrive refresh token: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("upload: no GDrive refresh token stored")
	}

	tokenSource := gdriveOAuthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	svc, err := drive.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return "", fmt.Errorf("upload: create drive service: %w", err)
	}

	file := &drive.File{Name: name, Parents: []string{cfg.FolderID}}
	created, err := svc.Files.Create(file).Media(bytes.NewReader(data)).Do()
	if err != nil {
		return "", fmt.Errorf("upload: create file %s: %w", name, err)
	}
	return created.Id, nil
}
