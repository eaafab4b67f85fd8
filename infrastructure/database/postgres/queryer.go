package postgres

import (
	"context"
	"database/sql"
)

// Queryer é implementado por *sql.DB e *sql.Tx, permitindo que os repositórios
// executem a mesma consulta dentro ou fora de uma transação
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
