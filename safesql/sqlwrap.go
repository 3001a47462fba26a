// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package safesql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"time"
)

// Drivers is a tiny wrapper for https://pkg.go.dev/database/sql#Drivers
func Drivers() []string { return sql.Drivers() }

// Register is a tiny wrapper for https://pkg.go.dev/database/sql#Register
func Register(name string, driver driver.Driver) { sql.Register(name, driver) }

// ColumnType is a tiny wrapper for https://pkg.go.dev/database/sql#ColumnType
type ColumnType = sql.ColumnType

// DBStats is a tiny wrapper for https://pkg.go.dev/database/sql#DBStats
type DBStats = sql.DBStats

// IsolationLevel is a tiny wrapper for https://pkg.go.dev/database/sql#IsolationLevel
type IsolationLevel = sql.IsolationLevel

// NamedArg is a tiny wrapper for https://pkg.go.dev/database/sql#NamedArg
type NamedArg = sql.NamedArg

// NullBool is a tiny wrapper for https://pkg.go.dev/database/sql#NullBool
type NullBool = sql.NullBool

// NullFloat64 is a tiny wrapper for https://pkg.go.dev/database/sql#NullFloat64
type NullFloat64 = sql.NullFloat64

// NullInt32 is a tiny wrapper for https://pkg.go.dev/database/sql#NullInt32
type NullInt32 = sql.NullInt32

// NullInt64 is a tiny wrapper for https://pkg.go.dev/database/sql#NullInt64
type NullInt64 = sql.NullInt64

// NullString is a tiny wrapper for https://pkg.go.dev/database/sql#NullString
type NullString = sql.NullString

// NullTime is a tiny wrapper for https://pkg.go.dev/database/sql#NullTime
type NullTime = sql.NullTime

// Out is a tiny wrapper for https://pkg.go.dev/database/sql#Out
type Out = sql.Out

// RawBytes is a tiny wrapper for https://pkg.go.dev/database/sql#RawBytes
type RawBytes = sql.RawBytes

// Result is a tiny wrapper for https://pkg.go.dev/database/sql#Result
type Result = sql.Result

// Row is a tiny wrapper for https://pkg.go.dev/database/sql#Row
type Row = sql.Row

// Rows is a tiny wrapper for https://pkg.go.dev/database/sql#Rows
type Rows = sql.Rows

// Scanner is a tiny wrapper for https://pkg.go.dev/database/sql#Scanner
type Scanner = sql.Scanner

// Stmt is a tiny wrapper for https://pkg.go.dev/database/sql#Stmt
type Stmt = sql.Stmt

// TxOptions is a tiny wrapper for https://pkg.go.dev/database/sql#TxOptions
type TxOptions = sql.TxOptions

// Conn behaves as the standard SQL package one, with the exception that it
// does not implement the `Raw` method for security reasons.
// Please see https://pkg.go.dev/database/sql#Conn
type Conn struct {
	c *sql.Conn
	d Dialect
}

// Dialect returns the quoting dialect of the handle this connection came from.
func (c Conn) Dialect() Dialect { return c.d }

// QuoteIdentifier quotes identifiers under the connection's dialect.
func (c Conn) QuoteIdentifier(values ...Value) ([]SQL, error) {
	return QuoteIdentifier(c.d, values...)
}

// QuoteString quotes string literals under the connection's dialect.
func (c Conn) QuoteString(values ...Value) ([]SQL, error) {
	return QuoteString(c.d, values...)
}

// BeginTx is a tiny wrapper for https://pkg.go.dev/database/sql#Conn.BeginTx
func (c Conn) BeginTx(ctx context.Context, opts *TxOptions) (Tx, error) {
	t, err := c.c.BeginTx(ctx, opts)
	return Tx{t, c.d}, err
}

// Close is a tiny wrapper for https://pkg.go.dev/database/sql#Conn.Close
func (c Conn) Close() error {
	return c.c.Close()
}

// ExecContext is a tiny wrapper for https://pkg.go.dev/database/sql#Conn.ExecContext
func (c Conn) ExecContext(ctx context.Context, query SQL, args ...interface{}) (Result, error) {
	return c.c.ExecContext(ctx, query.s, args...)
}

// PingContext is a tiny wrapper for https://pkg.go.dev/database/sql#Conn.PingContext
func (c Conn) PingContext(ctx context.Context) error {
	return c.c.PingContext(ctx)
}

// PrepareContext is a tiny wrapper for https://pkg.go.dev/database/sql#Conn.PrepareContext
func (c Conn) PrepareContext(ctx context.Context, query SQL) (*Stmt, error) {
	return c.c.PrepareContext(ctx, query.s)
}

// QueryContext is a tiny wrapper for https://pkg.go.dev/database/sql#Conn.QueryContext
func (c Conn) QueryContext(ctx context.Context, query SQL, args ...interface{}) (*Rows, error) {
	return c.c.QueryContext(ctx, query.s, args...)
}

// QueryRowContext is a tiny wrapper for https://pkg.go.dev/database/sql#Conn.QueryRowContext
func (c Conn) QueryRowContext(ctx context.Context, query SQL, args ...interface{}) *Row {
	return c.c.QueryRowContext(ctx, query.s, args...)
}

// DB behaves as the standard SQL package one, with the exception that it
// does not implement the `Driver` method for security reasons. A DB also
// carries the quoting Dialect matching its driver, so code holding a handle
// can quote identifiers and literals without picking a convention by hand.
// Please see https://pkg.go.dev/database/sql#DB
type DB struct {
	db *sql.DB
	d  Dialect
}

// Open is a tiny wrapper for https://pkg.go.dev/database/sql#Open.
// The returned handle carries DialectForDriver(driverName).
func Open(driverName, dataSourceName string) (DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	return DB{db, DialectForDriver(driverName)}, err
}

// OpenDB is a tiny wrapper for https://pkg.go.dev/database/sql#OpenDB.
// The connector cannot name its driver, so the handle quotes with the given
// dialect; nil selects ANSI.
func OpenDB(c driver.Connector, d Dialect) DB {
	if d == nil {
		d = ANSI
	}
	return DB{sql.OpenDB(c), d}
}

// Dialect returns the quoting dialect carried by the handle.
func (db DB) Dialect() Dialect { return db.d }

// QuoteIdentifier quotes identifiers under the handle's dialect.
func (db DB) QuoteIdentifier(values ...Value) ([]SQL, error) {
	return QuoteIdentifier(db.d, values...)
}

// QuoteString quotes string literals under the handle's dialect.
func (db DB) QuoteString(values ...Value) ([]SQL, error) {
	return QuoteString(db.d, values...)
}

// Begin is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Begin
func (db DB) Begin() (Tx, error) {
	t, err := db.db.Begin()
	return Tx{t, db.d}, err
}

// BeginTx is a tiny wrapper for https://pkg.go.dev/database/sql#DB.BeginTx
func (db DB) BeginTx(ctx context.Context, opts *TxOptions) (Tx, error) {
	t, err := db.db.BeginTx(ctx, opts)
	return Tx{t, db.d}, err
}

// Close is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Close
func (db DB) Close() error {
	return db.db.Close()
}

// Conn is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Conn
func (db DB) Conn(ctx context.Context) (Conn, error) {
	c, err := db.db.Conn(ctx)
	return Conn{c, db.d}, err
}

// Exec is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Exec
func (db DB) Exec(query SQL, args ...interface{}) (Result, error) {
	return db.db.Exec(query.s, args...)
}

// ExecContext is a tiny wrapper for https://pkg.go.dev/database/sql#DB.ExecContext
func (db DB) ExecContext(ctx context.Context, query SQL, args ...interface{}) (Result, error) {
	return db.db.ExecContext(ctx, query.s, args...)
}

// Ping is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Ping
func (db DB) Ping() error {
	return db.db.Ping()
}

// PingContext is a tiny wrapper for https://pkg.go.dev/database/sql#DB.PingContext
func (db DB) PingContext(ctx context.Context) error {
	return db.db.PingContext(ctx)
}

// Prepare is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Prepare
func (db DB) Prepare(query SQL) (*Stmt, error) {
	return db.db.Prepare(query.s)
}

// PrepareContext is a tiny wrapper for https://pkg.go.dev/database/sql#DB.PrepareContext
func (db DB) PrepareContext(ctx context.Context, query SQL) (*Stmt, error) {
	return db.db.PrepareContext(ctx, query.s)
}

// Query is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Query
func (db DB) Query(query SQL, args ...interface{}) (*Rows, error) {
	return db.db.Query(query.s, args...)
}

// QueryContext is a tiny wrapper for https://pkg.go.dev/database/sql#DB.QueryContext
func (db DB) QueryContext(ctx context.Context, query SQL, args ...interface{}) (*Rows, error) {
	return db.db.QueryContext(ctx, query.s, args...)
}

// QueryRow is a tiny wrapper for https://pkg.go.dev/database/sql#DB.QueryRow
func (db DB) QueryRow(query SQL, args ...interface{}) *Row {
	return db.db.QueryRow(query.s, args...)
}

// QueryRowContext is a tiny wrapper for https://pkg.go.dev/database/sql#DB.QueryRowContext
func (db DB) QueryRowContext(ctx context.Context, query SQL, args ...interface{}) *Row {
	return db.db.QueryRowContext(ctx, query.s, args...)
}

// SetConnMaxIdleTime is a tiny wrapper for https://pkg.go.dev/database/sql#DB.SetConnMaxIdleTime
func (db DB) SetConnMaxIdleTime(d time.Duration) {
	db.db.SetConnMaxIdleTime(d)
}

// SetConnMaxLifetime is a tiny wrapper for https://pkg.go.dev/database/sql#DB.SetConnMaxLifetime
func (db DB) SetConnMaxLifetime(d time.Duration) {
	db.db.SetConnMaxLifetime(d)
}

// SetMaxIdleConns is a tiny wrapper for https://pkg.go.dev/database/sql#DB.SetMaxIdleConns
func (db DB) SetMaxIdleConns(n int) {
	db.db.SetMaxIdleConns(n)
}

// SetMaxOpenConns is a tiny wrapper for https://pkg.go.dev/database/sql#DB.SetMaxOpenConns
func (db DB) SetMaxOpenConns(n int) {
	db.db.SetMaxOpenConns(n)
}

// Stats is a tiny wrapper for https://pkg.go.dev/database/sql#DB.Stats
func (db DB) Stats() DBStats {
	return db.db.Stats()
}

// Tx is a tiny wrapper for https://pkg.go.dev/database/sql#Tx
type Tx struct {
	tx *sql.Tx
	d  Dialect
}

// Dialect returns the quoting dialect of the handle this transaction came from.
func (tx Tx) Dialect() Dialect { return tx.d }

// QuoteIdentifier quotes identifiers under the transaction's dialect.
func (tx Tx) QuoteIdentifier(values ...Value) ([]SQL, error) {
	return QuoteIdentifier(tx.d, values...)
}

// QuoteString quotes string literals under the transaction's dialect.
func (tx Tx) QuoteString(values ...Value) ([]SQL, error) {
	return QuoteString(tx.d, values...)
}

// Commit is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.Commit
func (tx Tx) Commit() error { return tx.tx.Commit() }

// Exec is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.Exec
func (tx Tx) Exec(query SQL, args ...interface{}) (Result, error) {
	return tx.tx.Exec(query.s, args...)
}

// ExecContext is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.ExecContext
func (tx Tx) ExecContext(ctx context.Context, query SQL, args ...interface{}) (Result, error) {
	return tx.tx.ExecContext(ctx, query.s, args...)
}

// Prepare is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.Prepare
func (tx Tx) Prepare(query SQL) (*Stmt, error) { return tx.tx.Prepare(query.s) }

// PrepareContext is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.PrepareContext
func (tx Tx) PrepareContext(ctx context.Context, query SQL) (*Stmt, error) {
	return tx.tx.PrepareContext(ctx, query.s)
}

// Query is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.Query
func (tx Tx) Query(query SQL, args ...interface{}) (*Rows, error) {
	return tx.tx.Query(query.s, args...)
}

// QueryContext is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.QueryContext
func (tx Tx) QueryContext(ctx context.Context, query SQL, args ...interface{}) (*Rows, error) {
	return tx.tx.QueryContext(ctx, query.s, args...)
}

// QueryRow is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.QueryRow
func (tx Tx) QueryRow(query SQL, args ...interface{}) *Row {
	return tx.tx.QueryRow(query.s, args...)
}

// QueryRowContext is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.QueryRowContext
func (tx Tx) QueryRowContext(ctx context.Context, query SQL, args ...interface{}) *Row {
	return tx.tx.QueryRowContext(ctx, query.s, args...)
}

// Rollback is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.Rollback
func (tx Tx) Rollback() error {
	return tx.tx.Rollback()
}

// Stmt is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.Stmt
func (tx Tx) Stmt(stmt *Stmt) *Stmt {
	return tx.tx.Stmt(stmt)
}

// StmtContext is a tiny wrapper for https://pkg.go.dev/database/sql#Tx.StmtContext
func (tx Tx) StmtContext(ctx context.Context, stmt *Stmt) *Stmt {
	return tx.tx.StmtContext(ctx, stmt)
}
