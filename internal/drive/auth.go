package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	docs "google.golang.org/api/docs/v1"
	gdrive "google.golang.org/api/drive/v3"
)

// Scopes required by the triage workflows: full Drive access for rename,
// trash and reparent, and read access to document bodies.
var oauthScopes = []string{
	gdrive.DriveScope,
	docs.DocumentsScope,
}

// TokenSource loads the OAuth client from credentialsFile and returns a
// token source backed by the cached token at tokenFile. When no usable
// cached token exists it runs the installed-app flow: the user opens the
// printed URL and pastes the authorization code back on stdin. The obtained
// token is written to tokenFile for subsequent runs.
//
// A missing credentials file is a setup error and aborts the run; nothing
// downstream can work without it.
func TokenSource(ctx context.Context, credentialsFile, tokenFile string, logger *slog.Logger) (oauth2.TokenSource, error) {
	if logger == nil {
		logger = slog.Default()
	}

	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", credentialsFile, err)
	}
	cfg, err := google.ConfigFromJSON(b, oauthScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	tok, err := tokenFromFile(tokenFile)
	if err == nil {
		logger.Info("loaded cached token", "path", tokenFile)
	} else {
		logger.Info("no cached token, starting authorization flow", "path", tokenFile)
		tok, err = tokenFromWeb(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFile, tok); err != nil {
			logger.Warn("failed to cache token", "path", tokenFile, "error", err)
		} else {
			logger.Info("cached token", "path", tokenFile)
		}
	}

	// The token source refreshes expired tokens transparently using the
	// refresh token embedded in the cached credentials.
	return cfg.TokenSource(ctx, tok), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token file %s: %w", path, err)
	}
	return tok, nil
}

func tokenFromWeb(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%v\n> ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
