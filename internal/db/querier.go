package db

import (
	"context"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
)

// conn is what the pool and an open transaction have in common.
type conn interface {
	pgxscan.Querier
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// querier carries the scany based reads shared by Database and Transaction.
type querier struct {
	conn conn
}

func (q querier) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return pgxscan.Get(ctx, q.conn, dest, query, args...)
}

func (q querier) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return pgxscan.Select(ctx, q.conn, dest, query, args...)
}

func (q querier) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	return q.conn.Exec(ctx, query, args...)
}
