package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// TokenStore keeps the admin bearer token between calls.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryTokenStore keeps the token for the life of the process.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *MemoryTokenStore) Clear() { s.SetToken("") }

// FileTokenStore persists the token as a small JSON document, readable only by the owner.
// Write failures are dropped: the next call simply runs unauthenticated.
type FileTokenStore struct {
	Path string

	mu sync.Mutex
}

type tokenFile struct {
	AccessToken string `json:"access_token"`
}

func (s *FileTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return ""
	}
	var f tokenFile
	if err := json.Unmarshal(b, &f); err != nil {
		return ""
	}
	return f.AccessToken
}

func (s *FileTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, _ := json.Marshal(tokenFile{AccessToken: token})
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.Path, b, 0o600)
}

func (s *FileTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = os.WriteFile(s.Path, []byte("{}"), 0o600)
	}
}

// DefaultTokenPath is where catalogctl keeps its session.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("admin: locate config dir: %w", err)
	}
	return filepath.Join(dir, "catalogctl", "token.json"), nil
}

// Navigator is the page-level collaborator of the session: where the operator is and how to
// send them to the login screen.
type Navigator interface {
	CurrentPath() string
	Redirect(path string)
}

// AuthContext is the session shared by every admin call.
type AuthContext struct {
	Store     TokenStore
	Navigator Navigator

	redirected atomic.Bool
}

func NewAuthContext(store TokenStore, nav Navigator) *AuthContext {
	if store == nil {
		store = &MemoryTokenStore{}
	}
	return &AuthContext{Store: store, Navigator: nav}
}

func (a *AuthContext) Token() string { return a.Store.Token() }

// SignIn stores a fresh token and re-arms the login redirect.
func (a *AuthContext) SignIn(token string) {
	a.Store.SetToken(token)
	a.redirected.Store(false)
}

// HandleUnauthorized clears the token and redirects to the login page. Concurrent 401s
// produce one redirect, and none when the operator already is on the login page.
func (a *AuthContext) HandleUnauthorized() bool {
	a.Store.Clear()
	if a.Navigator == nil {
		return false
	}
	current := a.Navigator.CurrentPath()
	target := LoginPath(current)
	if current == target {
		return false
	}
	if !a.redirected.CompareAndSwap(false, true) {
		return false
	}
	a.Navigator.Redirect(target)
	return true
}

// LoginPath is {base}/login, with base "/admin" when the admin is served under /admin.
func LoginPath(current string) string {
	if current == "/admin" || strings.HasPrefix(current, "/admin/") {
		return "/admin/login"
	}
	return "/login"
}
