// Package pg provides an argument buffer and helpers for running commands
// built with sqlstr through the pgx driver.
package pg

import (
	"context"
	"database/sql/driver"
	"reflect"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mitranim/sqlstr"
	"github.com/pkg/errors"
)

/*
Argument buffer for pgx. `Push` accepts nil, values whose type is registered in
the type map (including pointers and slices of such types), and
`driver.Valuer`s. Other values are rejected, leaving the buffer unchanged, so
unsupported arguments fail while building the command rather than when it's
sent to the server.

The zero value is ready to use. `Map` defaults to a map created by
`NewTypeMap`.
*/
type Args struct {
	Map  *pgtype.Map
	vals []any
}

var _ = sqlstr.ArgBuffer((*Args)(nil))

// Shortcut for a command holding a new `Args`.
func NewCommand() *sqlstr.Command[*Args] { return sqlstr.NewCommand(&Args{}) }

/*
Creates a type map with the pgx defaults plus `uuid.UUID`, which pgx doesn't
know by its Go type.
*/
func NewTypeMap() *pgtype.Map {
	out := pgtype.NewMap()
	out.RegisterDefaultPgType(uuid.UUID{}, `uuid`)
	return out
}

// Implement `sqlstr.ArgBuffer`.
func (self *Args) Push(val any) error {
	err := self.check(val)
	if err != nil {
		return err
	}
	self.vals = append(self.vals, val)
	return nil
}

// Implement `sqlstr.ArgBuffer`.
func (self *Args) Count() uint32 { return uint32(len(self.vals)) }

// Returns the pushed values, in placeholder order.
func (self *Args) Values() []any { return self.vals }

func (self *Args) check(val any) error {
	if val == nil {
		return nil
	}
	if self.Map == nil {
		self.Map = NewTypeMap()
	}

	if _, ok := self.Map.TypeForValue(val); ok {
		return nil
	}
	if _, ok := val.(driver.Valuer); ok {
		return nil
	}

	rval := reflect.ValueOf(val)
	if rval.Kind() == reflect.Pointer {
		if rval.IsNil() {
			return nil
		}
		if _, ok := self.Map.TypeForValue(rval.Elem().Interface()); ok {
			return nil
		}
	}

	return errors.Errorf(`unsupported argument type %T`, val)
}

/*
Quotes a possibly qualified identifier, such as a schema-qualified table name:

	pg.Ident(`public`, `user`)
	// "public"."user"
*/
func Ident(parts ...string) string { return pgx.Identifier(parts).Sanitize() }

/*
Subset of `*pgx.Conn`, `*pgxpool.Pool` and `pgx.Tx` used by `Exec`, `Query` and
`QueryRow`.
*/
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Executes the command. Fails without contacting the server if the command has
// an error.
func Exec(ctx context.Context, conn Executor, cmd *sqlstr.Command[*Args]) (pgconn.CommandTag, error) {
	text, args, err := cmd.Reify()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return conn.Exec(ctx, text, args.Values()...)
}

// Runs the command as a query. Fails without contacting the server if the
// command has an error.
func Query(ctx context.Context, conn Executor, cmd *sqlstr.Command[*Args]) (pgx.Rows, error) {
	text, args, err := cmd.Reify()
	if err != nil {
		return nil, err
	}
	return conn.Query(ctx, text, args.Values()...)
}

/*
Runs the command as a single-row query and scans the row into the
destinations.
*/
func QueryRow(ctx context.Context, conn Executor, cmd *sqlstr.Command[*Args], dest ...any) error {
	text, args, err := cmd.Reify()
	if err != nil {
		return err
	}
	return conn.QueryRow(ctx, text, args.Values()...).Scan(dest...)
}
