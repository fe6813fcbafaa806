// Package xpgx wraps pgxpool with squirrel-aware query helpers so store
// code works with builders instead of raw SQL strings.
package xpgx

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool interface {
	// Getx runs the query and scans exactly one row into dest.
	Getx(ctx context.Context, dest any, query sq.Sqlizer) error
	// Selectx runs the query and scans all rows into the slice dest.
	Selectx(ctx context.Context, dest any, query sq.Sqlizer) error
	// Execx runs a statement that returns no rows.
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	p *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &pool{p: p}, nil
}

func (p *pool) Getx(ctx context.Context, dest any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Get(ctx, p.p, dest, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dest any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Select(ctx, p.p, dest, sql, args...)
}

func (p *pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	return p.p.Exec(ctx, sql, args...)
}

func (p *pool) Ping(ctx context.Context) error {
	return p.p.Ping(ctx)
}

func (p *pool) Close() {
	p.p.Close()
}
