package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// The scripted driver replays an expected sequence of queries and execs so
// service logic can be exercised against GORM without a real database.
// Transactions are accepted as no-ops; only queries and execs are scripted.

type stepKind int

const (
	kindQuery stepKind = iota
	kindExec
)

type queryStep struct {
	kind    stepKind
	pattern *regexp.Regexp
	args    []driver.Value // nil skips argument checking
	columns []string
	rows    [][]driver.Value
	err     error
	result  driver.Result
}

type scriptedDB struct {
	mu    sync.Mutex
	steps []*queryStep
}

func (db *scriptedDB) next(kind stepKind, query string, args []driver.NamedValue) (*queryStep, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.steps) == 0 {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	step := db.steps[0]
	if step.kind != kind {
		return nil, fmt.Errorf("unexpected kind for query %s: got %v want %v", query, kind, step.kind)
	}
	if !step.pattern.MatchString(query) {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	if step.args != nil {
		if len(step.args) != len(args) {
			return nil, fmt.Errorf("unexpected arg count for %s: got %d want %d", query, len(args), len(step.args))
		}
		for i := range args {
			if args[i].Value != step.args[i] {
				return nil, fmt.Errorf("unexpected arg %d for %s: got %v want %v", i, query, args[i].Value, step.args[i])
			}
		}
	}
	db.steps = db.steps[1:]
	return step, nil
}

func (db *scriptedDB) verifyComplete() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.steps) != 0 {
		return fmt.Errorf("unmet expectations: %d", len(db.steps))
	}
	return nil
}

type scriptedDriver struct {
	db *scriptedDB
}

func (d *scriptedDriver) Open(string) (driver.Conn, error) {
	return &scriptedConn{db: d.db}, nil
}

type scriptedConn struct {
	db *scriptedDB
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) Begin() (driver.Tx, error) {
	return scriptedTx{}, nil
}

func (c *scriptedConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return scriptedTx{}, nil
}

type scriptedTx struct{}

func (scriptedTx) Commit() error   { return nil }
func (scriptedTx) Rollback() error { return nil }

func (c *scriptedConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	step, err := c.db.next(kindQuery, query, args)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if step.err != nil {
		return nil, step.err
	}
	return &scriptedRows{columns: step.columns, rows: step.rows}, nil
}

func (c *scriptedConn) Query(query string, args []driver.Value) (driver.Rows, error) {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return c.QueryContext(context.Background(), query, named)
}

func (c *scriptedConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	step, err := c.db.next(kindExec, query, args)
	if err != nil {
		return nil, err
	}
	if step.err != nil {
		return nil, step.err
	}
	if step.result != nil {
		return step.result, nil
	}
	return scriptedResult{}, nil
}

func (c *scriptedConn) Exec(query string, args []driver.Value) (driver.Result, error) {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return c.ExecContext(context.Background(), query, named)
}

type scriptedResult struct {
	lastInsertID int64
	rowsAffected int64
}

func (r scriptedResult) LastInsertId() (int64, error) { return r.lastInsertID, nil }

func (r scriptedResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

// execResult is the result of an exec touching n rows.
func execResult(n int64) driver.Result {
	return scriptedResult{rowsAffected: n}
}

type scriptedRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *scriptedRows) Columns() []string { return r.columns }

func (r *scriptedRows) Close() error { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.idx]
	for i := range dest {
		dest[i] = nil
	}
	for i := range row {
		dest[i] = row[i]
	}
	r.idx++
	return nil
}

func newScriptedGormDB(t *testing.T, steps []*queryStep) (*gorm.DB, *scriptedDB, func()) {
	t.Helper()
	state := &scriptedDB{steps: steps}
	driverName := fmt.Sprintf("scripted_%d", time.Now().UnixNano())
	sql.Register(driverName, &scriptedDriver{db: state})

	sqlDB, err := sql.Open(driverName, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return gormDB, state, cleanup
}
