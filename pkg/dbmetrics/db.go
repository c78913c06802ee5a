// Package dbmetrics обёртка над database/sql со сбором прометеус-метрик
// и передачей активной транзакции через context
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

// DBExecutor минимальный интерфейс для выполнения запросов
// Реализуется *sql.DB, *sql.Tx, *DB и *Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
// Реализуется *sql.Tx и *Tx
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txCtxKey struct{}

// WithTx кладет активную транзакцию в контекст
// Используется transaction manager'ами, репозитории достают её через GetExecutor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txCtxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(TxExecutor)
	return ok
}

// DB обёртка над *sql.DB с метриками
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap оборачивает *sql.DB сбором метрик
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор метрик connection pool
// Сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

// collectPoolStats периодически снимает статистику connection pool
func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues("in_use").Set(float64(stats.InUse))
			d.metrics.DBConnectionsIdle.WithLabelValues("idle").Set(float64(stats.Idle))
			d.metrics.DBConnectionsWait.WithLabelValues("wait").Add(float64(0))
		}
	}
}

// observe записывает метрики выполнения запроса
func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx начинает транзакцию, возвращая обёрнутый метриками TxExecutor
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, db: d}, nil
}

// Tx обёртка над *sql.Tx с метриками
type Tx struct {
	tx *sql.Tx
	db *DB
}

// ExecContext выполняет запрос в транзакции с записью метрик
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe("tx_exec", start, err)
	return res, err
}

// QueryContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe("tx_query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe("tx_query_row", start, nil)
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.db.observe("tx_commit", start, err)
	return err
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.db.observe("tx_rollback", start, err)
	return err
}
