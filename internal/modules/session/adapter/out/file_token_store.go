package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cfdash/internal/modules/session/domain"
	sessionout "cfdash/internal/modules/session/port/out"
	apperrors "cfdash/internal/platform/errors"
)

// FileTokenStore keeps the session credential in one of two files: the
// durable scope under the user config dir (survives restarts) and the
// ephemeral scope under the OS temp dir. Saving into either scope removes
// the other so at most one holds a credential.
type FileTokenStore struct {
	durablePath   string
	ephemeralPath string
}

func NewFileTokenStore(durablePath, ephemeralPath string) *FileTokenStore {
	return &FileTokenStore{durablePath: durablePath, ephemeralPath: ephemeralPath}
}

var _ sessionout.TokenStore = (*FileTokenStore)(nil)

func (s *FileTokenStore) Save(_ context.Context, scope domain.Scope, creds domain.Credentials) error {
	path, other := s.durablePath, s.ephemeralPath
	if scope == domain.ScopeEphemeral {
		path, other = s.ephemeralPath, s.durablePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	removeQuiet(other)
	return nil
}

// Load prefers the durable scope, mirroring how the original gate reads
// persistent storage before session storage.
func (s *FileTokenStore) Load(_ context.Context) (domain.Scope, domain.Credentials, error) {
	if creds, ok := readCredentials(s.durablePath); ok {
		return domain.ScopeDurable, creds, nil
	}
	if creds, ok := readCredentials(s.ephemeralPath); ok {
		return domain.ScopeEphemeral, creds, nil
	}
	return "", domain.Credentials{}, apperrors.ErrNotAuthenticated
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	removeQuiet(s.durablePath)
	removeQuiet(s.ephemeralPath)
	return nil
}

// Token implements the transport's TokenSource against the same two scopes.
func (s *FileTokenStore) Token() (string, bool) {
	_, creds, err := s.Load(context.Background())
	if err != nil {
		return "", false
	}
	return creds.Token, true
}

func readCredentials(path string) (domain.Credentials, bool) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return domain.Credentials{}, false
	}
	creds := domain.Credentials{}
	if err := json.Unmarshal(payload, &creds); err != nil || creds.Token == "" {
		return domain.Credentials{}, false
	}
	return creds, true
}

func removeQuiet(path string) {
	_ = os.Remove(path)
}
