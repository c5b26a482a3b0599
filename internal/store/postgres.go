package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/lib/pq"
)

// Options are the four required connection settings for the backing
// document database. Open fails when any of them is empty.
type Options struct {
	// Certificate is the base64-encoded PKCS#12 client credential.
	Certificate         string
	CertificatePassword string
	DatabaseURLs        []string
	Database            string
}

// numericFields are document fields ordered as numbers rather than
// text.
var numericFields = map[string]bool{
	"price":    true,
	"discount": true,
	"stock":    true,
	"number":   true,
}

type postgresStore struct {
	db *sql.DB
}

// Open builds the single process-wide store connection. The documents
// live in one table keyed by (collection, id) with the body in a JSONB
// column. No retries happen here; failures surface to the caller.
func Open(opts Options) (Store, error) {
	if opts.Certificate == "" || opts.CertificatePassword == "" ||
		len(opts.DatabaseURLs) == 0 || opts.Database == "" {
		return nil, fmt.Errorf("one or more store connection options are missing")
	}

	certPath, keyPath, err := writeCredentialPEMs(opts.Certificate, opts.CertificatePassword)
	if err != nil {
		return nil, fmt.Errorf("decode store credential: %w", err)
	}

	dsn, err := buildDSN(opts.DatabaseURLs[0], opts.Database, certPath, keyPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store unreachable: %w", err)
	}
	return &postgresStore{db: db}, nil
}

// NewPostgresStore wraps an already-open database handle, mainly for
// integration tests.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{db: db}
}

func buildDSN(base, database, certPath, keyPath string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid database url %q: %w", base, err)
	}
	u.Path = "/" + database

	q := u.Query()
	q.Set("sslmode", "require")
	q.Set("sslcert", certPath)
	q.Set("sslkey", keyPath)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *postgresStore) OpenSession() Session { return &postgresSession{db: s.db} }

func (s *postgresStore) Close() error { return s.db.Close() }

type postgresSession struct {
	db *sql.DB
}

func (p *postgresSession) Query(collection string) *Query {
	return newQuery(p, collection)
}

func (p *postgresSession) Load(ctx context.Context, id string, dest interface{}) error {
	var data []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE id = $1`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return ErrDocumentNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (p *postgresSession) StoreDocument(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", id, err)
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc`,
		collection, id, data)
	return err
}

func (p *postgresSession) run(ctx context.Context, q *Query, dest interface{}) error {
	query, args := buildSelect(q)

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return err
		}
		docs = append(docs, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return decodeDocuments(docs, dest)
}

// buildSelect renders a query into SQL over the documents table. Field
// names come from code, never from callers, so interpolating them is
// safe; every value goes through a placeholder.
func buildSelect(q *Query) (string, []interface{}) {
	query := `SELECT doc FROM documents WHERE collection = $1`
	args := []interface{}{q.collection}
	n := 2

	for _, f := range q.filters {
		switch f.op {
		case filterEquals:
			query += fmt.Sprintf(` AND doc->>'%s' = $%d`, f.field, n)
			args = append(args, fmt.Sprintf("%v", f.value))
			n++
		case filterContains:
			query += fmt.Sprintf(` AND doc->'%s' ? $%d`, f.field, n)
			args = append(args, fmt.Sprintf("%v", f.value))
			n++
		case filterIDIn:
			query += fmt.Sprintf(` AND id = ANY($%d)`, n)
			args = append(args, pq.Array(f.ids))
			n++
		}
	}

	if q.order != nil {
		expr := fmt.Sprintf(`doc->>'%s'`, q.order.field)
		if numericFields[q.order.field] {
			expr = fmt.Sprintf(`(doc->>'%s')::bigint`, q.order.field)
		}
		direction := "ASC"
		if q.order.descending {
			direction = "DESC"
		}
		query += fmt.Sprintf(` ORDER BY %s %s`, expr, direction)
	}
	return query, args
}
