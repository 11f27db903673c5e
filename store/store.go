// Package store is the backing-store boundary for list-style reads. The
// query layer compiles filter sets onto the Query interface; what actually
// answers the query (hosted database client, in-memory fixture) lives behind
// it.
package store

import "context"

// Row is a single record returned by a query.
type Row map[string]any

//go:generate mockgen -destination=../query/storemocks_test.go -package=query_test github.com/fynlo/fynlo-go/store Query
type Query interface {
	// Eq keeps rows whose field equals value.
	Eq(field string, value any) Query
	// In keeps rows whose field equals any of the given values.
	In(field string, values []any) Query
	// Like keeps rows whose field matches a pattern with % wildcards at
	// either end.
	Like(field string, pattern string) Query
	// Order sorts the result by field.
	Order(field string, ascending bool) Query
	// Range keeps rows from index from to index to, inclusive.
	Range(from, to int) Query
	Execute(ctx context.Context) ([]Row, error)
}

type Store interface {
	From(collection string) Query
}
