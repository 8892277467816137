package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// ErrNotAuthorized means there is no usable cached token; the caller
// has to run the interactive authorization flow.
var ErrNotAuthorized = errors.New("no cached google token, run the auth flow")

// Authorizer holds the oauth client configuration and the token cache
// file. it is constructed once and passed explicitly to whatever needs
// an authorized client; tokens refresh transparently and fall back to
// ErrNotAuthorized when a re-authentication is required.
type Authorizer struct {
	Config    *oauth2.Config
	TokenFile string
}

func NewAuthorizer(credentialsFile, tokenFile string) (Authorizer, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return Authorizer{}, fmt.Errorf("read credentials file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return Authorizer{}, fmt.Errorf("parse credentials file: %w", err)
	}
	return Authorizer{Config: config, TokenFile: tokenFile}, nil
}

// Client returns an http client that authenticates with the cached
// token, refreshing it as needed and persisting refreshed tokens back
// to the cache file.
func (a Authorizer) Client(ctx context.Context) (*http.Client, error) {
	token, err := a.readToken()
	if os.IsNotExist(err) {
		return nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, err
	}

	src := &persistingTokenSource{
		wrapped: a.Config.TokenSource(ctx, token),
		file:    a.TokenFile,
		last:    token,
	}
	return oauth2.NewClient(ctx, src), nil
}

// AuthURL returns the URL the user visits to grant access.
func (a Authorizer) AuthURL(state string) string {
	return a.Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token and caches it.
func (a Authorizer) Exchange(ctx context.Context, code string) error {
	token, err := a.Config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	return writeToken(a.TokenFile, token)
}

func (a Authorizer) readToken() (*oauth2.Token, error) {
	b, err := os.ReadFile(a.TokenFile)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(b, &token); err != nil {
		return nil, fmt.Errorf("parse token cache %s: %w", a.TokenFile, err)
	}
	return &token, nil
}

func writeToken(file string, token *oauth2.Token) error {
	b, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0600)
}

// persistingTokenSource writes refreshed tokens back to the cache file
// so the next run does not have to refresh again.
type persistingTokenSource struct {
	wrapped oauth2.TokenSource
	file    string

	mu   sync.Mutex
	last *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.wrapped.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAuthorized, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil || token.AccessToken != s.last.AccessToken {
		if err := writeToken(s.file, token); err != nil {
			return nil, err
		}
		s.last = token
	}
	return token, nil
}
