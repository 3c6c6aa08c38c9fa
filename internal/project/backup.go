package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/piwi3910/FurniProfit/internal/model"
)

// backupVersion is written into every preferences backup.
const backupVersion = "1"

// ErrInvalidBackup is returned when a file is not a preferences backup.
var ErrInvalidBackup = errors.New("invalid preferences backup")

// PreferencesBackup wraps an AppConfig for copying preferences between machines.
type PreferencesBackup struct {
	Version   string          `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Config    model.AppConfig `json:"config"`
}

// ExportPreferences writes cfg to w as an indented JSON backup stamped with now.
func ExportPreferences(w io.Writer, cfg model.AppConfig, now time.Time) error {
	backup := PreferencesBackup{
		Version:   backupVersion,
		CreatedAt: now.UTC(),
		Config:    cfg,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("failed to write preferences backup: %w", err)
	}
	return nil
}

// ImportPreferences reads a backup written by ExportPreferences. The returned
// config is normalized; applying it is left to the caller.
func ImportPreferences(r io.Reader) (PreferencesBackup, error) {
	backup := PreferencesBackup{Config: model.DefaultAppConfig()}
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return PreferencesBackup{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if backup.Version == "" {
		return PreferencesBackup{}, fmt.Errorf("%w: missing version field", ErrInvalidBackup)
	}
	backup.Config.Normalize()
	return backup, nil
}
