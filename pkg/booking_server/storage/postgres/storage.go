// Package postgres implements the storage interfaces on PostgreSQL via pgx.
package postgres

import (
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oceanbooking/oceanbooking/pkg/util"
)

type _Storage struct {
	dbPool *pgxpool.Pool
}

// _TxWrapper serializes access to the underlying pgx transaction. The
// aggregate managers fan child operations out over goroutines within one
// transaction, and a pgx connection accepts only one statement at a time.
type _TxWrapper struct {
	tx pgx.Tx
	mu sync.Mutex
}

type _ResultWrapper struct {
	result pgconn.CommandTag
}

type _RowsWrapper struct {
	rows pgx.Rows
	mu   *sync.Mutex
}

type _RowWrapper struct {
	row pgx.Row
	mu  *sync.Mutex
}

func NewStorageWithPool(pool *pgxpool.Pool) *_Storage {
	return &_Storage{
		dbPool: pool,
	}
}

func NewStorageWithConfig(config util.PostgresDatabaseConfig) (*_Storage, error) {
	pool, err := util.NewPostgresDBPool(config)
	if err != nil {
		return nil, err
	}
	return NewStorageWithPool(pool), nil
}
