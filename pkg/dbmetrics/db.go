package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/tyrehub/appointment-service/pkg/metrics"
)

// DB wraps *sql.DB and records query counters and latency for every
// statement that passes through it. It satisfies both
// txmanager.DBExecutor and txmanager.TxBeginner, so repositories and
// the transaction manager can take it in place of the raw handle.
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// Wrap wraps db with metrics collection.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, m: m}
}

// ExecContext executes a statement, recording metrics.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

// QueryContext runs a query, recording metrics.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext runs a single-row query, recording metrics. Row
// errors surface at Scan time and are counted as successes here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

// BeginTx starts a transaction on the underlying handle.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return d.db.BeginTx(ctx, opts)
}

func (d *DB) observe(query string, start time.Time, err error) {
	op := operation(query)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	d.m.DBQueriesTotal.WithLabelValues(op, outcome).Inc()
	d.m.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
