package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Saves is a key/value view of the saves table scoped to one location.
// It implements core.SaveStore.
type Saves struct {
	store    *Store
	location string
}

var _ core.SaveStore = (*Saves)(nil)

// Namespace returns the save slot for location. Games use their id as the
// location; the SSH server adds the user name so players do not share records.
func (s *Store) Namespace(location string) *Saves {
	return &Saves{store: s, location: location}
}

// Location reports the namespace this view reads and writes.
func (v *Saves) Location() string {
	return v.location
}

// Lookup returns the stored value and whether the key exists.
func (v *Saves) Lookup(key string) (int, bool, error) {
	db, err := v.store.conn()
	if err != nil {
		return 0, false, err
	}

	var value int64
	err = db.QueryRow(
		"SELECT value FROM saves WHERE location = ? AND key = ?",
		v.location, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load %s/%s: %w", v.location, key, err)
	}
	return int(value), true, nil
}

// LoadInt returns the stored value, or def when the key is missing or the
// store cannot be read.
func (v *Saves) LoadInt(key string, def int) int {
	value, ok, err := v.Lookup(key)
	if err != nil || !ok {
		return def
	}
	return value
}

// SaveInt writes value under key. Last writer wins.
func (v *Saves) SaveInt(key string, value int) error {
	db, err := v.store.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO saves (location, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(location, key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		v.location, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s/%s: %w", v.location, key, err)
	}
	return nil
}
