package store

import "context"

type filterOp int

const (
	filterEquals filterOp = iota
	filterContains
	filterIDIn
)

type filter struct {
	op    filterOp
	field string
	value interface{}
	ids   []string
}

type ordering struct {
	field      string
	descending bool
}

// queryExecutor runs a finished query against a concrete backend.
type queryExecutor interface {
	run(ctx context.Context, q *Query, dest interface{}) error
}

// Query is an immutable query builder: every filter or ordering call
// returns a derived builder and leaves the receiver untouched, so a
// partially built query can be safely branched.
type Query struct {
	exec       queryExecutor
	collection string
	filters    []filter
	order      *ordering
}

func newQuery(exec queryExecutor, collection string) *Query {
	return &Query{exec: exec, collection: collection}
}

func (q *Query) clone() *Query {
	next := &Query{
		exec:       q.exec,
		collection: q.collection,
		filters:    make([]filter, len(q.filters)),
		order:      q.order,
	}
	copy(next.filters, q.filters)
	return next
}

// WhereEquals keeps documents whose field equals value.
func (q *Query) WhereEquals(field string, value interface{}) *Query {
	next := q.clone()
	next.filters = append(next.filters, filter{op: filterEquals, field: field, value: value})
	return next
}

// WhereContains keeps documents whose array-valued field contains
// value.
func (q *Query) WhereContains(field string, value interface{}) *Query {
	next := q.clone()
	next.filters = append(next.filters, filter{op: filterContains, field: field, value: value})
	return next
}

// WhereIDIn keeps documents whose id is in the given set.
func (q *Query) WhereIDIn(ids ...string) *Query {
	next := q.clone()
	next.filters = append(next.filters, filter{op: filterIDIn, ids: ids})
	return next
}

// OrderBy sorts ascending on field. A later ordering call replaces an
// earlier one.
func (q *Query) OrderBy(field string) *Query {
	next := q.clone()
	next.order = &ordering{field: field}
	return next
}

// OrderByDescending sorts descending on field.
func (q *Query) OrderByDescending(field string) *Query {
	next := q.clone()
	next.order = &ordering{field: field, descending: true}
	return next
}

// All executes the query and materializes every match into dest, a
// pointer to a slice.
func (q *Query) All(ctx context.Context, dest interface{}) error {
	return q.exec.run(ctx, q, dest)
}
