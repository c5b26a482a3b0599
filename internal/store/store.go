// Package store is the document store client behind the storefront
// facade. A Store hands out sessions; a session runs queries over a
// named collection and loads or stores whole documents by id.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// ErrDocumentNotFound is returned by Session.Load when no document has
// the requested id.
var ErrDocumentNotFound = errors.New("document not found")

// Store owns the one process-wide connection to the backing document
// database. It is opened once at startup and shared.
type Store interface {
	// OpenSession returns a handle scoped to one logical unit of
	// queries and loads.
	OpenSession() Session
	Close() error
}

// Session is a scoped view over the store.
type Session interface {
	// Query starts a query builder over the named collection.
	Query(collection string) *Query

	// Load fetches the document with the given id into dest, or
	// returns ErrDocumentNotFound.
	Load(ctx context.Context, id string, dest interface{}) error

	// StoreDocument writes doc under (collection, id), replacing any
	// existing document with that id.
	StoreDocument(ctx context.Context, collection, id string, doc interface{}) error
}

// decodeDocuments unmarshals a set of raw documents into dest, which
// must be a pointer to a slice.
func decodeDocuments(docs []json.RawMessage, dest interface{}) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, doc := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(doc)
	}
	buf.WriteByte(']')
	return json.Unmarshal(buf.Bytes(), dest)
}
