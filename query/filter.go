package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fynlo/fynlo-go/store"
)

type filterKind int

const (
	kindEquals filterKind = iota
	kindOneOf
	kindContains
)

// Filter is a tagged filter condition. The caller picks the semantics at the
// call site, so a literal % inside an Equals value is never mistaken for a
// wildcard.
type Filter struct {
	kind   filterKind
	value  any
	values []any
	substr string
}

// Equals keeps rows whose field equals value. Nil and empty-string values
// mean "no filter" and are dropped during Build.
func Equals(value any) Filter {
	return Filter{kind: kindEquals, value: value}
}

// OneOf keeps rows whose field matches any of the given values.
func OneOf(values ...any) Filter {
	return Filter{kind: kindOneOf, values: values}
}

// Contains keeps rows whose field contains substr.
func Contains(substr string) Filter {
	return Filter{kind: kindContains, substr: substr}
}

// Filters maps field names to their conditions.
type Filters map[string]Filter

// Build compiles the filter set onto a store query. Empty conditions are
// omitted entirely.
func Build(q store.Query, filters Filters) store.Query {
	for field, f := range filters {
		switch f.kind {
		case kindEquals:
			if f.value == nil {
				continue
			}
			if s, ok := f.value.(string); ok && s == "" {
				continue
			}
			q = q.Eq(field, f.value)
		case kindOneOf:
			if len(f.values) == 0 {
				continue
			}
			q = q.In(field, f.values)
		case kindContains:
			if f.substr == "" {
				continue
			}
			q = q.Like(field, "%"+f.substr+"%")
		}
	}
	return q
}

// CacheKey renders the filter set in a deterministic string form so it can
// key a cache entry. Fields are sorted; omitted conditions still contribute
// nothing.
func (f Filters) CacheKey() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, field := range fields {
		switch flt := f[field]; flt.kind {
		case kindEquals:
			if flt.value == nil {
				continue
			}
			if s, ok := flt.value.(string); ok && s == "" {
				continue
			}
			fmt.Fprintf(&b, "%s=%v;", field, flt.value)
		case kindOneOf:
			if len(flt.values) == 0 {
				continue
			}
			fmt.Fprintf(&b, "%s in %v;", field, flt.values)
		case kindContains:
			if flt.substr == "" {
				continue
			}
			fmt.Fprintf(&b, "%s~%s;", field, flt.substr)
		}
	}
	return b.String()
}

// Page describes a pagination window. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

// BuildPaginated compiles filters plus ordering and a pagination window onto
// a store query.
func BuildPaginated(q store.Query, filters Filters, orderBy string, ascending bool, page Page) store.Query {
	q = Build(q, filters)
	if orderBy != "" {
		q = q.Order(orderBy, ascending)
	}
	if page.Size > 0 {
		number := page.Number
		if number < 1 {
			number = 1
		}
		from := (number - 1) * page.Size
		q = q.Range(from, from+page.Size-1)
	}
	return q
}
