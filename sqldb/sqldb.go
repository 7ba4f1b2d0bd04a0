// Package sqldb provides an argument buffer and helpers for running commands
// built with sqlstr through `database/sql`.
package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"reflect"
	"time"

	"github.com/lib/pq"
	"github.com/mitranim/sqlstr"
	"github.com/pkg/errors"
)

// Database dialect. Determines placeholder style and value conversions.
type Dialect uint8

const (
	Postgres Dialect = iota
	SQLite
	MySQL
)

// Placeholder style expected by drivers of this dialect.
func (self Dialect) Style() sqlstr.Style {
	if self == Postgres {
		return sqlstr.StyleDollar
	}
	return sqlstr.StyleQuestion
}

// Implement `fmt.Stringer`.
func (self Dialect) String() string {
	switch self {
	case Postgres:
		return `postgres`
	case SQLite:
		return `sqlite`
	case MySQL:
		return `mysql`
	default:
		return ``
	}
}

/*
Argument buffer for `database/sql`. Values are converted the way the driver
would see them, so unsupported values are rejected while building the command:

	* `driver.Valuer`s are kept as-is; nil pointers implementing it become nil.
	* For Postgres, slices other than `[]byte` are wrapped with `pq.Array`.
	* For SQLite, `time.Time` becomes RFC 3339 text.
	* Anything else goes through `driver.DefaultParameterConverter`.

A rejected value leaves the buffer unchanged.
*/
type Args struct {
	Dialect Dialect
	vals    []any
}

var _ = sqlstr.ArgBuffer((*Args)(nil))

// Shortcut for a command holding a new `Args` of the given dialect.
func NewCommand(dialect Dialect) *sqlstr.Command[*Args] {
	return sqlstr.NewCommand(&Args{Dialect: dialect})
}

// Implement `sqlstr.ArgBuffer`.
func (self *Args) Push(val any) error {
	val, err := self.convert(val)
	if err != nil {
		return err
	}
	self.vals = append(self.vals, val)
	return nil
}

// Implement `sqlstr.ArgBuffer`.
func (self *Args) Count() uint32 { return uint32(len(self.vals)) }

// Returns the converted values, in placeholder order.
func (self *Args) Values() []any { return self.vals }

func (self *Args) convert(val any) (any, error) {
	if val == nil {
		return nil, nil
	}

	if valuer, ok := val.(driver.Valuer); ok {
		rval := reflect.ValueOf(valuer)
		if rval.Kind() == reflect.Pointer && rval.IsNil() {
			return nil, nil
		}
		return val, nil
	}

	switch self.Dialect {
	case Postgres:
		if isArray(val) {
			return pq.Array(val), nil
		}

	case SQLite:
		if inst, ok := val.(time.Time); ok {
			text, err := inst.MarshalText()
			if err != nil {
				return nil, errors.Wrap(err, `encoding time for SQLite`)
			}
			return string(text), nil
		}
	}

	out, err := driver.DefaultParameterConverter.ConvertValue(val)
	if err != nil {
		return nil, errors.Wrapf(err, `converting argument of type %T`, val)
	}
	return out, nil
}

func isArray(val any) bool {
	if _, ok := val.([]byte); ok {
		return false
	}
	kind := reflect.TypeOf(val).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

/*
Returns the command text in the placeholder style of the dialect, with the
arguments. Fails if the command has an error.
*/
func Build(cmd *sqlstr.Command[*Args]) (string, []any, error) {
	text, args, err := cmd.Reify()
	if err != nil {
		return ``, nil, err
	}
	text, err = sqlstr.Rebind(text, args.Dialect.Style())
	if err != nil {
		return ``, nil, err
	}
	return text, args.Values(), nil
}

// Subset of `*sql.DB`, `*sql.Conn` and `*sql.Tx`.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Executes the command. Fails without contacting the database if the command
// has an error.
func Exec(ctx context.Context, conn Executor, cmd *sqlstr.Command[*Args]) (sql.Result, error) {
	text, args, err := Build(cmd)
	if err != nil {
		return nil, err
	}
	return conn.ExecContext(ctx, text, args...)
}

// Runs the command as a query. Fails without contacting the database if the
// command has an error.
func Query(ctx context.Context, conn Executor, cmd *sqlstr.Command[*Args]) (*sql.Rows, error) {
	text, args, err := Build(cmd)
	if err != nil {
		return nil, err
	}
	return conn.QueryContext(ctx, text, args...)
}
