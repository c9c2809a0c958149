/**
 * Copyright (c) 2026, The Eventual Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package store provides a small, synchronous, in-memory keyed-record store. It is deliberately
// independent of the async core in both directions: nothing here produces or consumes a Future,
// and its only failure mode is "not found". A Store is an explicit, injectable object with a
// single-writer-at-a-time access discipline enforced by an internal mutex, rather than shared
// process-global state.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is an in-memory keyed-record store that preserves insertion order. The zero value is not
// usable; create one with New. All methods are safe for concurrent use.
type Store struct {
	// mu serializes all access; the store is single-writer at a time.
	mu      sync.Mutex
	records map[ID]Record
	order   []ID
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		records: make(map[ID]Record),
	}
}

// Create adds the record to the store under a freshly assigned ID and returns that ID. Any ID or
// CreatedAt already set on the record is overwritten.
func (s *Store) Create(r Record) ID {
	id := ID(uuid.NewString())
	r.ID = id
	r.CreatedAt = time.Now()

	s.mu.Lock()
	s.records[id] = r
	s.order = append(s.order, id)
	s.mu.Unlock()

	return id
}

// Read returns the record stored under id. The second return value reports whether it was found.
func (s *Store) Read(id ID) (Record, bool) {
	s.mu.Lock()
	r, ok := s.records[id]
	s.mu.Unlock()
	return r, ok
}

// Update replaces the record stored under id with transform applied to its current value and
// returns the updated record. The record's ID and CreatedAt survive the transform; its position in
// insertion order is unchanged. Update reports false, without invoking transform, when no record
// with this id exists.
func (s *Store) Update(id ID, transform func(Record) Record) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return Record{}, false
	}

	updated := transform(r)
	updated.ID = id
	updated.CreatedAt = r.CreatedAt
	s.records[id] = updated

	return updated, true
}

// Delete removes the record stored under id and reports whether it existed.
func (s *Store) Delete(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// ListAll returns all records in insertion order.
func (s *Store) ListAll() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.records[id])
	}
	return records
}

// ListByTag returns the records carrying the given tag, in insertion order.
func (s *Store) ListByTag(tag string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []Record
	for _, id := range s.order {
		if r := s.records[id]; r.HasTag(tag) {
			records = append(records, r)
		}
	}
	return records
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	n := len(s.order)
	s.mu.Unlock()
	return n
}
