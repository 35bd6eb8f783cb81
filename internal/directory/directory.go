// Package directory resolves usernames to credential entries.
//
// Directory is the only contract callers depend on; StaticDirectory serves a
// fixed in-process table and PostgresDirectory reads the same shape from a
// database so that a real identity store can replace the fixture without
// touching the session layer.
package directory

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/models"
)

// Directory looks up credential entries by username. It returns
// common.ErrorNotFound when the username is unknown; any other error is a
// backend failure.
type Directory interface {
	Lookup(ctx context.Context, username string) (models.CredentialEntry, error)
}

// StaticDirectory is an immutable in-memory Directory.
type StaticDirectory struct {
	entries map[string]models.CredentialEntry
}

// NewStaticDirectory builds a directory from entries. Usernames must be
// non-empty and unique.
func NewStaticDirectory(entries []models.CredentialEntry) (*StaticDirectory, error) {
	m := make(map[string]models.CredentialEntry, len(entries))
	for _, e := range entries {
		if e.Username == "" {
			return nil, fmt.Errorf("credential entry with empty username")
		}
		if _, dup := m[e.Username]; dup {
			return nil, fmt.Errorf("duplicate credential entry %q", e.Username)
		}
		e.Profile = e.Profile.Clone()
		m[e.Username] = e
	}
	return &StaticDirectory{entries: m}, nil
}

// Default returns a StaticDirectory holding DefaultEntries.
func Default() *StaticDirectory {
	d, err := NewStaticDirectory(DefaultEntries())
	if err != nil {
		// the fixture is fixed at compile time
		panic(err)
	}
	return d
}

func (d *StaticDirectory) Lookup(_ context.Context, username string) (models.CredentialEntry, error) {
	e, ok := d.entries[username]
	if !ok {
		return models.CredentialEntry{}, common.ErrorNotFound
	}
	e.Profile = e.Profile.Clone()
	return e, nil
}

// Len returns the number of entries.
func (d *StaticDirectory) Len() int {
	return len(d.entries)
}
