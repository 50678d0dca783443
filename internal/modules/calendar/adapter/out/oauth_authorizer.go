package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	calendarout "tempo/internal/modules/calendar/port/out"
	apperrors "tempo/internal/platform/errors"
)

const calendarReadonlyScope = "https://www.googleapis.com/auth/calendar.readonly"

// OAuthAuthorizer runs the installed-app oauth2 code flow and keeps the
// resulting token in a JSON file next to the config.
type OAuthAuthorizer struct {
	config    *oauth2.Config
	tokenPath string
}

func NewOAuthAuthorizer(clientID, clientSecret, tokenPath string) *OAuthAuthorizer {
	var cfg *oauth2.Config
	if clientID != "" && clientSecret != "" {
		cfg = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
			Scopes:       []string{calendarReadonlyScope},
			Endpoint:     google.Endpoint,
		}
	}
	return &OAuthAuthorizer{config: cfg, tokenPath: tokenPath}
}

var _ calendarout.Authorizer = (*OAuthAuthorizer)(nil)

func (a *OAuthAuthorizer) AuthURL(state string) (string, error) {
	if a.config == nil {
		return "", apperrors.ErrNotAuthorized
	}
	return a.config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (a *OAuthAuthorizer) Exchange(ctx context.Context, code string) error {
	if a.config == nil {
		return apperrors.ErrNotAuthorized
	}
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}
	return a.saveToken(token)
}

func (a *OAuthAuthorizer) Authorized() bool {
	_, err := a.loadToken()
	return err == nil
}

// Client returns an http client that refreshes the stored token as needed.
func (a *OAuthAuthorizer) Client(ctx context.Context) (*http.Client, error) {
	if a.config == nil {
		return nil, apperrors.ErrNotAuthorized
	}
	token, err := a.loadToken()
	if err != nil {
		return nil, err
	}
	return a.config.Client(ctx, token), nil
}

func (a *OAuthAuthorizer) loadToken() (*oauth2.Token, error) {
	payload, err := os.ReadFile(a.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotAuthorized
		}
		return nil, fmt.Errorf("read token: %w", err)
	}
	token := &oauth2.Token{}
	if err := json.Unmarshal(payload, token); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, apperrors.ErrNotAuthorized
	}
	return token, nil
}

func (a *OAuthAuthorizer) saveToken(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(a.tokenPath), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	payload, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(a.tokenPath, payload, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}
