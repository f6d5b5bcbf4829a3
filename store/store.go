// store/store.go
// Copyright (C) 2024 Yahia Zakaria
// This file persists solve outcomes to Google Cloud Datastore, giving
// the module's datastore dependency an actual caller: a durable ledger
// of what was solved, with what algorithm, and how long it took.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/datastore"
)

// SolveRecord is one row of the solve ledger: a single solve request
// and its outcome, suitable for later audit or replay.
type SolveRecord struct {
	RequestID  string    `datastore:"request_id"`
	Algorithm  string    `datastore:"algorithm"`
	LevelName  string    `datastore:"level_name,noindex"`
	Level      string    `datastore:"level,noindex"`
	Width      int       `datastore:"width"`
	Height     int       `datastore:"height"`
	Solved     bool      `datastore:"solved"`
	Actions    string    `datastore:"actions,noindex"`
	Moves      int       `datastore:"moves"`
	Iterations uint64    `datastore:"iterations"`
	ElapsedMs  int64     `datastore:"elapsed_ms"`
	CreatedAt  time.Time `datastore:"created_at"`
}

// entityKind is the Datastore kind under which every SolveRecord is
// stored.
const entityKind = "SokosolveRecord"

// DatastoreStore persists SolveRecords to Cloud Datastore.
type DatastoreStore struct {
	client *datastore.Client
}

// NewDatastoreStore dials Cloud Datastore for projectID. An empty
// projectID is passed to the client library as is, which then reads
// the DATASTORE_PROJECT_ID environment variable.
func NewDatastoreStore(ctx context.Context, projectID string) (*DatastoreStore, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("sokosolve: open datastore client: %w", err)
	}
	return &DatastoreStore{client: client}, nil
}

// Close releases the underlying Datastore client.
func (s *DatastoreStore) Close() error {
	return s.client.Close()
}

// Put writes rec under a freshly allocated incomplete key and returns
// the key's numeric ID.
func (s *DatastoreStore) Put(ctx context.Context, rec *SolveRecord) (int64, error) {
	key := datastore.IncompleteKey(entityKind, nil)
	key, err := s.client.Put(ctx, key, rec)
	if err != nil {
		return 0, fmt.Errorf("sokosolve: put solve record: %w", err)
	}
	return key.ID, nil
}

// Get reads back the record stored under id.
func (s *DatastoreStore) Get(ctx context.Context, id int64) (*SolveRecord, error) {
	var rec SolveRecord
	key := datastore.IDKey(entityKind, id, nil)
	if err := s.client.Get(ctx, key, &rec); err != nil {
		return nil, fmt.Errorf("sokosolve: get solve record %d: %w", id, err)
	}
	return &rec, nil
}

// RecentByLevel returns up to limit records for levelName, newest
// first.
func (s *DatastoreStore) RecentByLevel(ctx context.Context, levelName string, limit int) ([]*SolveRecord, error) {
	query := datastore.NewQuery(entityKind).
		FilterField("level_name", "=", levelName).
		Order("-created_at").
		Limit(limit)
	var recs []*SolveRecord
	if _, err := s.client.GetAll(ctx, query, &recs); err != nil {
		return nil, fmt.Errorf("sokosolve: query solve records for %q: %w", levelName, err)
	}
	return recs, nil
}
