package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

const sessionFile = "session.json"

// FileStore implements sdk.SessionStore using a JSON file under ~/.chrono.
// It is the CLI's identity cache: the persisted authToken/userId/username
// tuple all views derive their identity from.
type FileStore struct {
	path string
}

// Ensure FileStore implements sdk.SessionStore at compile time.
var _ sdk.SessionStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted in the user's home directory.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	chronoDir := filepath.Join(home, ".chrono")
	if err := os.MkdirAll(chronoDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create .chrono directory: %w", err)
	}
	return &FileStore{path: filepath.Join(chronoDir, sessionFile)}, nil
}

// NewFileStoreAt creates a FileStore rooted in an explicit directory.
func NewFileStoreAt(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, sessionFile)}
}

// Load reads the persisted session. A missing file is the unauthenticated
// state, not an error. A session holding a token without a user id (or the
// reverse) is corrupt and rejected so no dependent call runs against half an
// identity.
func (s *FileStore) Load() (sdk.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return sdk.Session{}, nil
		}
		return sdk.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}
	var session sdk.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return sdk.Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	if session.Partial() {
		return sdk.Session{}, fmt.Errorf("session file at %s holds a token without a user id (or the reverse); run `chronoctl auth login` again", s.path)
	}
	return session, nil
}

// Save writes the session to the file.
func (s *FileStore) Save(session sdk.Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear deletes the session file. Used on logout and when the principal's own
// username changes, which invalidates the stored identity.
func (s *FileStore) Clear() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
