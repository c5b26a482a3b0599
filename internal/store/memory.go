package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

type memoryDocument struct {
	id   string
	data json.RawMessage
}

// memoryStore holds documents per collection in insertion order, so an
// unordered query returns a deterministic sequence.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memoryDocument
}

// NewMemoryStore returns an in-process Store used in tests and local
// development.
func NewMemoryStore() Store {
	return &memoryStore{collections: make(map[string][]memoryDocument)}
}

// Seed inserts a document outside any session, for fixture setup.
func Seed(s Store, collection, id string, doc interface{}) error {
	return s.OpenSession().StoreDocument(context.Background(), collection, id, doc)
}

func (s *memoryStore) OpenSession() Session { return &memorySession{store: s} }

func (s *memoryStore) Close() error { return nil }

type memorySession struct {
	store *memoryStore
}

func (m *memorySession) Query(collection string) *Query {
	return newQuery(m, collection)
}

func (m *memorySession) Load(ctx context.Context, id string, dest interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	for _, docs := range m.store.collections {
		for _, doc := range docs {
			if doc.id == id {
				return json.Unmarshal(doc.data, dest)
			}
		}
	}
	return ErrDocumentNotFound
}

func (m *memorySession) StoreDocument(ctx context.Context, collection, id string, doc interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", id, err)
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	docs := m.store.collections[collection]
	for i, existing := range docs {
		if existing.id == id {
			docs[i].data = data
			return nil
		}
	}
	m.store.collections[collection] = append(docs, memoryDocument{id: id, data: data})
	return nil
}

func (m *memorySession) run(ctx context.Context, q *Query, dest interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.store.mu.RLock()
	docs := make([]memoryDocument, len(m.store.collections[q.collection]))
	copy(docs, m.store.collections[q.collection])
	m.store.mu.RUnlock()

	var matched []memoryDocument
	for _, doc := range docs {
		ok, err := matches(doc, q.filters)
		if err != nil {
			return err
		}
		if ok {
			matched = append(matched, doc)
		}
	}

	if q.order != nil {
		if err := sortDocuments(matched, q.order); err != nil {
			return err
		}
	}

	raw := make([]json.RawMessage, len(matched))
	for i, doc := range matched {
		raw[i] = doc.data
	}
	return decodeDocuments(raw, dest)
}

func matches(doc memoryDocument, filters []filter) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc.data, &fields); err != nil {
		return false, err
	}

	for _, f := range filters {
		switch f.op {
		case filterEquals:
			if !rawEquals(fields[f.field], f.value) {
				return false, nil
			}
		case filterContains:
			var elems []json.RawMessage
			if err := json.Unmarshal(fields[f.field], &elems); err != nil {
				return false, nil
			}
			found := false
			for _, elem := range elems {
				if rawEquals(elem, f.value) {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		case filterIDIn:
			found := false
			for _, id := range f.ids {
				if id == doc.id {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		}
	}
	return true, nil
}

// rawEquals compares a document field against a filter value through
// their JSON encodings.
func rawEquals(raw json.RawMessage, value interface{}) bool {
	if raw == nil {
		return false
	}
	want, err := json.Marshal(value)
	if err != nil {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(raw), want)
}

func sortDocuments(docs []memoryDocument, order *ordering) error {
	type sortable struct {
		doc    memoryDocument
		number float64
		text   string
		isNum  bool
	}

	keys := make([]sortable, len(docs))
	for i, doc := range docs {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(doc.data, &fields); err != nil {
			return err
		}
		key := sortable{doc: doc}
		raw := fields[order.field]
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			key.number = n
			key.isNum = true
		} else {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				key.text = s
			}
		}
		keys[i] = key
	}

	less := func(a, b sortable) bool {
		if a.isNum && b.isNum {
			return a.number < b.number
		}
		return a.text < b.text
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if order.descending {
			return less(keys[j], keys[i])
		}
		return less(keys[i], keys[j])
	})

	for i := range docs {
		docs[i] = keys[i].doc
	}
	return nil
}
