package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Ensure Memory implements the Store interface
var _ Store = &Memory{}

// Memory is an in-process Store used by tests and the CLI demo mode.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Row
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Row)}
}

// Seed replaces the rows of a collection.
func (m *Memory) Seed(collection string, rows []Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = rows
}

func (m *Memory) From(collection string) Query {
	return &memoryQuery{store: m, collection: collection, from: -1, to: -1}
}

type predicate func(Row) bool

type memoryQuery struct {
	store      *Memory
	collection string
	predicates []predicate
	orderField string
	orderAsc   bool
	ordered    bool
	from, to   int
}

func (q *memoryQuery) Eq(field string, value any) Query {
	q.predicates = append(q.predicates, func(row Row) bool {
		return fmt.Sprint(row[field]) == fmt.Sprint(value)
	})
	return q
}

func (q *memoryQuery) In(field string, values []any) Query {
	q.predicates = append(q.predicates, func(row Row) bool {
		have := fmt.Sprint(row[field])
		for _, value := range values {
			if have == fmt.Sprint(value) {
				return true
			}
		}
		return false
	})
	return q
}

func (q *memoryQuery) Like(field string, pattern string) Query {
	q.predicates = append(q.predicates, func(row Row) bool {
		return likeMatch(pattern, fmt.Sprint(row[field]))
	})
	return q
}

func (q *memoryQuery) Order(field string, ascending bool) Query {
	q.orderField = field
	q.orderAsc = ascending
	q.ordered = true
	return q
}

func (q *memoryQuery) Range(from, to int) Query {
	q.from = from
	q.to = to
	return q
}

func (q *memoryQuery) Execute(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q.store.mu.RLock()
	rows := q.store.collections[q.collection]
	q.store.mu.RUnlock()

	var result []Row
	for _, row := range rows {
		if q.matches(row) {
			result = append(result, row)
		}
	}

	if q.ordered {
		field, asc := q.orderField, q.orderAsc
		sort.SliceStable(result, func(i, j int) bool {
			less := fmt.Sprint(result[i][field]) < fmt.Sprint(result[j][field])
			if asc {
				return less
			}
			return !less
		})
	}

	if q.from >= 0 {
		if q.from >= len(result) {
			return nil, nil
		}
		end := q.to + 1
		if end > len(result) || q.to < 0 {
			end = len(result)
		}
		result = result[q.from:end]
	}

	return result, nil
}

func (q *memoryQuery) matches(row Row) bool {
	for _, p := range q.predicates {
		if !p(row) {
			return false
		}
	}
	return true
}

// likeMatch supports % wildcards at either end of the pattern, the subset
// the platform API uses.
func likeMatch(pattern, value string) bool {
	prefix := strings.HasPrefix(pattern, "%")
	suffix := strings.HasSuffix(pattern, "%")
	inner := strings.Trim(pattern, "%")

	switch {
	case prefix && suffix:
		return strings.Contains(value, inner)
	case prefix:
		return strings.HasSuffix(value, inner)
	case suffix:
		return strings.HasPrefix(value, inner)
	default:
		return value == pattern
	}
}
