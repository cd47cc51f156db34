package viewctx

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// ViewFileName is the name of the viewed-user context file.
	ViewFileName = ".chrono-view"
	// ViewFileVersion is the current schema version.
	ViewFileVersion = "1"
)

// ViewedUser remembers which user an administrator chose to inspect, so the
// next event listing in this directory shows that user's events without
// repeating the id. The hint is transient: it is cleared as soon as it is
// consumed.
type ViewedUser struct {
	Version   string    `json:"version"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	ServerURL string    `json:"server_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the ViewedUser is usable.
func (v *ViewedUser) Validate() error {
	if v.Version != ViewFileVersion {
		return fmt.Errorf("unsupported %s file version: %s (expected %s)", ViewFileName, v.Version, ViewFileVersion)
	}
	if v.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if _, err := uuid.Parse(v.UserID); err != nil {
		return fmt.Errorf("invalid user_id format: %w", err)
	}
	if v.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// Read reads the context file from the current directory.
// Returns nil, nil if the file doesn't exist.
// Returns nil, error if the file is corrupted or invalid.
func Read() (*ViewedUser, error) {
	data, err := os.ReadFile(ViewFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s file: %w", ViewFileName, err)
	}
	var viewed ViewedUser
	if err := json.Unmarshal(data, &viewed); err != nil {
		return nil, fmt.Errorf("failed to parse %s file: %w", ViewFileName, err)
	}
	if err := viewed.Validate(); err != nil {
		return nil, err
	}
	return &viewed, nil
}

// Write writes the context file to the current directory.
func Write(viewed *ViewedUser) error {
	if err := viewed.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(viewed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s file: %w", ViewFileName, err)
	}
	return os.WriteFile(ViewFileName, data, 0644)
}

// Clear removes the context file. Clearing an absent file is a no-op.
func Clear() error {
	if _, err := os.Stat(ViewFileName); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(ViewFileName)
}
