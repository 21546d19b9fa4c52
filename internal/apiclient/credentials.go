package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ekthaa/internal/domain"
)

// CredentialProvider supplies the bearer token for outgoing requests and
// forgets it when the backend rejects it.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// TokenSetter is implemented by providers that can store a newly issued token.
type TokenSetter interface {
	SetToken(ctx context.Context, token string, user *domain.User) error
}

// MemoryCredentials keeps the token in memory.
type MemoryCredentials struct {
	mu    sync.Mutex
	token string
	user  *domain.User
}

func NewMemoryCredentials(token string) *MemoryCredentials {
	return &MemoryCredentials{token: token}
}

func (m *MemoryCredentials) Token(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryCredentials) ClearToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}

func (m *MemoryCredentials) SetToken(_ context.Context, token string, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = user
	return nil
}

// User returns the user stored with the token, if any.
func (m *MemoryCredentials) User() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

type credentialsFile struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

// FileCredentials persists the token and user as JSON in a file readable only
// by the owner.
type FileCredentials struct {
	mu   sync.Mutex
	path string
}

// NewFileCredentials stores credentials at path. An empty path resolves to
// ekthaa/credentials.json under the user config directory.
func NewFileCredentials(path string) (*FileCredentials, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		path = filepath.Join(dir, "ekthaa", "credentials.json")
	}
	return &FileCredentials{path: path}, nil
}

// Path returns the credentials file location.
func (f *FileCredentials) Path() string {
	return f.path
}

func (f *FileCredentials) read() (*credentialsFile, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return &credentialsFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}
	var c credentialsFile
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding credentials %s: %w", f.path, err)
	}
	return &c, nil
}

func (f *FileCredentials) Token(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, err := f.read()
	if err != nil {
		return "", err
	}
	return c.Token, nil
}

// User returns the stored user, or nil when logged out.
func (f *FileCredentials) User(_ context.Context) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, err := f.read()
	if err != nil {
		return nil, err
	}
	return c.User, nil
}

func (f *FileCredentials) ClearToken(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}

func (f *FileCredentials) SetToken(_ context.Context, token string, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.MarshalIndent(credentialsFile{Token: token, User: user}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating credentials dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing credentials: %w", err)
	}
	return nil
}
