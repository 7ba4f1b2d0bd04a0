package sqlstr

import (
	"database/sql/driver"
	"reflect"

	"github.com/mitranim/refut"
)

/*
Returns the column names of the fields tagged with `db`. Accepts a struct,
struct pointer, struct slice or struct slice pointer; nil pointers and slices
are fine as long as they carry a struct type. Treats embedded structs as part
of enclosing structs. Panics on other inputs. Example:

	type User struct {
		Id   int64  `db:"id"`
		Name string `db:"name"`
	}
	sqlstr.Columns(cmd, sqlstr.StructColumns((*User)(nil))...)
*/
func StructColumns(val any) []string {
	rtype := reflect.TypeOf(val)
	reqNonNilRtype(rtype, `listing struct columns`)

	rtype = refut.RtypeDeref(rtype)
	if rtype.Kind() == reflect.Slice {
		rtype = refut.RtypeDeref(rtype.Elem())
	}
	reqStructRtype(rtype, `listing struct columns`)

	var out []string
	err := refut.TraverseStructRtype(rtype, func(sfield reflect.StructField, _ []int) error {
		name := fieldColumnName(sfield)
		if name != `` {
			out = append(out, name)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}

/*
Pushes the values of the fields tagged with `db` as a comma-separated list of
placeholders, in the order of `StructColumns`. A nil struct pointer pushes
nothing. Panics on non-struct input.
*/
func StructValues(out Writer, val any) error {
	return Values(out, structFieldValues(val)...)
}

/*
Appends "INSERT INTO table (cols) VALUES ($1, ...)" for the fields tagged with
`db`. A struct without such fields produces "INSERT INTO table DEFAULT VALUES".
*/
func StructInsert(out Writer, table string, val any) error {
	cols, vals := structFields(val)

	InsertInto(out, table)
	if len(cols) == 0 {
		out.PushCmd(` DEFAULT VALUES`)
		return nil
	}

	err := Tuple(out, cols...)
	if err != nil {
		return err
	}
	return ValuesRows(out, vals)
}

/*
Appends "SET col = $1, ..." for the fields tagged with `db`. Fails with
`ErrArgumentNotFound` when there are no such fields, since an empty SET clause
is invalid SQL.
*/
func StructSet(out Writer, val any) error {
	cols, vals := structFields(val)
	return SetColumns(out, cols, vals)
}

/*
Appends conditions matching the fields tagged with `db`, joined with "AND".
Fields whose value is equivalent to SQL null, including nil pointers and nil
`driver.Valuer`s, become "col IS NULL". A struct without fields appends
nothing.
*/
func StructWhere(out Writer, val any) error {
	cols, vals := structFields(val)

	for ind, col := range cols {
		ContinueCondition(out, And)

		norm, err := normValue(vals[ind])
		if err != nil {
			return ErrArgument.while(`appending struct condition`).because(err)
		}

		if norm == nil {
			SeparatorOptional(out)
			out.PushCmd(col)
			IsNull(out)
			continue
		}

		err = LhsBinaryRhs(out, Lit(col), CmpEq, Val(vals[ind]))
		if err != nil {
			return err
		}
	}
	return nil
}

func structFieldValues(val any) []any {
	_, vals := structFields(val)
	return vals
}

func structFields(val any) (cols []string, vals []any) {
	rval := reflect.ValueOf(val)
	reqNonNilRtype(reflect.TypeOf(val), `traversing struct for DB fields`)
	reqStructRtype(refut.RtypeDeref(rval.Type()), `traversing struct for DB fields`)

	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		name := fieldColumnName(sfield)
		if name == `` {
			return nil
		}
		cols = append(cols, name)
		vals = append(vals, rval.Interface())
		return nil
	})
	if err != nil {
		panic(err)
	}
	return
}

func reqNonNilRtype(rtype reflect.Type, while string) {
	if rtype == nil {
		panic(ErrInvalidInput.while(while).becausef(`expected struct, got nil`))
	}
}

func reqStructRtype(rtype reflect.Type, while string) {
	if rtype.Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(while).becausef(`expected struct, got %v`, rtype))
	}
}

func fieldColumnName(sfield reflect.StructField) string {
	return refut.TagIdent(sfield.Tag.Get(`db`))
}

// Resolves `driver.Valuer` and nil pointers to the value the driver would see.
func normValue(val any) (any, error) {
	valuer, _ := val.(driver.Valuer)
	if valuer != nil {
		if refut.IsNil(valuer) {
			return nil, nil
		}
		out, err := valuer.Value()
		if err != nil {
			return nil, err
		}
		val = out
	}

	if refut.IsNil(val) {
		return nil, nil
	}
	return val, nil
}
