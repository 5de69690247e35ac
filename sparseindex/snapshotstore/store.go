/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package snapshotstore persists spacedlist.Int64Snapshot blobs to a bbolt
// file, keyed by the sparseindex.Index ID that produced them. It is kept
// outside the core spacedlist/sparseindex packages deliberately: nothing
// about the data structure itself requires durability, but an embedder
// that wants to checkpoint one between process restarts needs somewhere
// to put the bytes.
package snapshotstore

import (
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/Workiva/spaced-list/spacedlist"
)

var bucketName = []byte("snapshots")

// Store persists Int64Snapshots to a bbolt-backed file.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) a bbolt file at path for snapshot
// storage.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshotstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshotstore: init bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying bbolt file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put encodes snap with msgp and stores it under id, overwriting any
// previous snapshot for that id.
func (s *Store) Put(id uuid.UUID, snap spacedlist.Int64Snapshot) error {
	encoded, err := snap.MarshalMsg(nil)
	if err != nil {
		return fmt.Errorf("snapshotstore: marshal: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(id[:], encoded)
	})
}

// Get retrieves and decodes the most recently stored snapshot for id.
func (s *Store) Get(id uuid.UUID) (spacedlist.Int64Snapshot, bool, error) {
	var snap spacedlist.Int64Snapshot
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get(id[:])
		if raw == nil {
			return nil
		}
		found = true
		// bbolt's slice is only valid within this transaction; copy it
		// before decoding so the snapshot outlives the view.
		buf := make([]byte, len(raw))
		copy(buf, raw)
		_, err := snap.UnmarshalMsg(buf)
		return err
	})
	if err != nil {
		return spacedlist.Int64Snapshot{}, false, fmt.Errorf("snapshotstore: get: %w", err)
	}
	return snap, found, nil
}

// Delete removes any stored snapshot for id.
func (s *Store) Delete(id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete(id[:])
	})
}
