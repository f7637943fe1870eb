// Package credential supplies bearer tokens for the remote calendar and task
// services. The rest of the program treats the token as an opaque string.
package credential

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/atomicstack/termdeck/internal/logging/events"
)

// Provider yields the bearer token attached to outgoing requests.
type Provider interface {
	Token() (string, error)
}

// ErrNoCredential is returned when no token can be produced.
var ErrNoCredential = errors.New("no credential available")

// Scopes requested during interactive authorization.
var Scopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/tasks",
}

// Static is a fixed token, typically passed with -token.
type Static string

// Token implements Provider.
func (s Static) Token() (string, error) {
	if s == "" {
		return "", ErrNoCredential
	}
	return string(s), nil
}

type installedApp struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	AuthURI      string   `json:"auth_uri"`
	TokenURI     string   `json:"token_uri"`
	RedirectURIs []string `json:"redirect_uris"`
}

type credentialsFile struct {
	Installed *installedApp `json:"installed"`
	Web       *installedApp `json:"web"`
}

// LoadConfig reads an OAuth client definition in the "installed" (or "web")
// layout downloaded from the Google console.
func LoadConfig(path string, scopes ...string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var file credentialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode credentials %s: %w", path, err)
	}
	app := file.Installed
	if app == nil {
		app = file.Web
	}
	if app == nil || app.ClientID == "" {
		return nil, fmt.Errorf("credentials %s: missing client definition", path)
	}
	cfg := &oauth2.Config{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  app.AuthURI,
			TokenURL: app.TokenURI,
		},
		Scopes: scopes,
	}
	if len(app.RedirectURIs) > 0 {
		cfg.RedirectURL = app.RedirectURIs[0]
	}
	return cfg, nil
}

// File is a Provider backed by a client credentials file and a token file.
// The stored token is refreshed through the token endpoint when it has
// expired (or carries no expiry), and the refreshed token is written back.
type File struct {
	ctx             context.Context
	credentialsPath string
	tokenPath       string
	scopes          []string

	mu     sync.Mutex
	source oauth2.TokenSource
	last   string
}

// NewFile returns a file-backed provider. ctx governs the HTTP calls made
// while refreshing.
func NewFile(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) *File {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(scopes) == 0 {
		scopes = Scopes
	}
	return &File{ctx: ctx, credentialsPath: credentialsPath, tokenPath: tokenPath, scopes: scopes}
}

// Token implements Provider.
func (f *File) Token() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.source == nil {
		src, err := f.newSource()
		if err != nil {
			return "", err
		}
		f.source = src
	}
	tok, err := f.source.Token()
	if err != nil {
		f.source = nil
		return "", fmt.Errorf("refresh token: %w", err)
	}
	if tok.AccessToken != f.last {
		f.last = tok.AccessToken
		if err := SaveToken(f.tokenPath, tok); err != nil {
			events.Store.WriteFailed(f.tokenPath, err)
		}
	}
	return tok.AccessToken, nil
}

func (f *File) newSource() (oauth2.TokenSource, error) {
	tok, err := LoadToken(f.tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredential, err)
	}
	cfg, err := LoadConfig(f.credentialsPath, f.scopes...)
	if err != nil {
		if tok.Valid() && !tok.Expiry.IsZero() {
			return oauth2.StaticTokenSource(tok), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrNoCredential, err)
	}
	if tok.Expiry.IsZero() && tok.RefreshToken != "" {
		// Tokens saved without an expiry are refreshed once up front.
		tok.Expiry = time.Unix(1, 0)
	}
	return cfg.TokenSource(f.ctx, tok), nil
}

// LoadToken reads a token file holding at least access_token and
// refresh_token.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("decode token %s: %w", path, err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("token %s: empty", path)
	}
	return &tok, nil
}

// SaveToken writes tok to path, readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Authorize runs the installed-app code flow on a plain terminal: it prints
// the consent URL to out, reads the pasted code from in, exchanges it and
// saves the resulting token. It must run before the TUI takes the screen.
func Authorize(ctx context.Context, credentialsPath, tokenPath string, in io.Reader, out io.Writer) error {
	cfg, err := LoadConfig(credentialsPath, Scopes...)
	if err != nil {
		return err
	}
	url := cfg.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Go to the following URL and authorize the application: %s\n", url)
	fmt.Fprint(out, "Enter the authorization code: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return fmt.Errorf("%w: empty authorization code", ErrNoCredential)
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	return SaveToken(tokenPath, tok)
}
