package repositories

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recordedQuery struct {
	sql  string
	args []any
}

// fakeQuerier records every statement and answers with canned rows.
// errs is consumed one entry per statement; a nil entry lets the statement succeed.
type fakeQuerier struct {
	queries []recordedQuery
	errs    []error
	rows    [][]any
}

var _ Querier = (*fakeQuerier)(nil)

func (f *fakeQuerier) record(sql string, args []any) error {
	f.queries = append(f.queries, recordedQuery{sql: sql, args: args})
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	if err := f.record(sql, args); err != nil {
		return nil, err
	}
	return &fakeRows{values: f.rows}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	if err := f.record(sql, args); err != nil {
		return &fakeRow{err: err}
	}
	if len(f.rows) == 0 {
		return &fakeRow{err: pgx.ErrNoRows}
	}
	return &fakeRow{values: f.rows[0]}
}

func (f *fakeQuerier) lastQuery() recordedQuery {
	return f.queries[len(f.queries)-1]
}

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	values [][]any
	pos    int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.values[r.pos-1], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.values[r.pos-1], nil
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(values[i]))
	}
	return nil
}
