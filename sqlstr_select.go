package sqlstr

import (
	"strings"
)

// Appends "SELECT".
func Select(out Writer) { keyword(out, `SELECT`) }

// Appends "SELECT ALL".
func SelectAll(out Writer) { keyword(out, `SELECT ALL`) }

// Appends "SELECT DISTINCT".
func SelectDistinct(out Writer) { keyword(out, `SELECT DISTINCT`) }

// Appends "WHERE".
func Where(out Writer) { keyword(out, `WHERE`) }

// Appends "HAVING".
func Having(out Writer) { keyword(out, `HAVING`) }

// Appends "RETURNING".
func Returning(out Writer) { keyword(out, `RETURNING`) }

/*
Appends a comma-separated list of column expressions. Empty input appends
nothing. Example:

	sqlstr.Select(cmd)
	sqlstr.Columns(cmd, `id`, `name`)
	sqlstr.FromTables(cmd, `user`)
	// SELECT id, name FROM user
*/
func Columns(out Writer, cols ...string) {
	if len(cols) == 0 {
		return
	}
	SeparatorOptional(out)
	appendList(out, cols)
}

/*
Appends "FROM" followed by a comma-separated list of tables. With no tables,
appends only the keyword, which allows to write the table expression
separately.
*/
func FromTables(out Writer, tables ...string) {
	keywordList(out, `FROM`, tables)
}

/*
Appends a comma-separated list of placeholders, pushing the values into the
argument buffer. When the text already ends with a placeholder or a comma, the
list is continued with ", ", which allows to call this repeatedly:

	sqlstr.Select(cmd)
	sqlstr.Values(cmd, 10, 20)
	sqlstr.Values(cmd, `one`)
	// SELECT $1, $2, $3

Empty input appends nothing. Stops at the first rejected value; the previous
values remain written, and so does the ", " written before the rejected one.
Such text is a valid point to continue from: the next call to `Values` sees the
trailing comma and doesn't add another one.

	err := sqlstr.Values(cmd, 10, badValue)
	// "SELECT $1, "
	err = sqlstr.Values(cmd, 20)
	// SELECT $1, $2
*/
func Values(out Writer, vals ...any) error {
	if len(vals) == 0 {
		return nil
	}

	valueSeparator(out)
	for ind, val := range vals {
		if ind > 0 {
			ItemSeparator(out)
		}
		err := out.PushValue(val)
		if err != nil {
			return err
		}
	}
	return nil
}

/*
Appends a comma-separated list of expressions: literals are written as-is,
values become placeholders. Empty input appends nothing.
*/
func Exprs(out Writer, vals ...Expr) error {
	if len(vals) == 0 {
		return nil
	}

	SeparatorOptional(out)
	for ind, val := range vals {
		if ind > 0 {
			ItemSeparator(out)
		}
		err := out.PushExpr(val)
		if err != nil {
			return err
		}
	}
	return nil
}

/*
Builder of a column list with optional aliases. The result is plain text which
can be written via `Columns` or `(Writer).PushCmd`. Example:

	sqlstr.ColumnList{}.Column(`id`).ColumnAs(`firstName`, `first_name`).String()
	// id, firstName AS first_name
*/
type ColumnList []string

// Returns a copy of the list with the column appended.
func (self ColumnList) Column(col string) ColumnList {
	return append(self[:len(self):len(self)], col)
}

// Returns a copy of the list with "col AS alias" appended.
func (self ColumnList) ColumnAs(col, alias string) ColumnList {
	return self.Column(col + ` AS ` + alias)
}

// Returns a copy of the list with the other list appended.
func (self ColumnList) Extend(other ColumnList) ColumnList {
	return append(self[:len(self):len(self)], other...)
}

// Implement `fmt.Stringer`. Returns the comma-separated list.
func (self ColumnList) String() string { return strings.Join(self, `, `) }

func keyword(out Writer, val string) {
	SeparatorOptional(out)
	out.PushCmd(val)
}

func keywordList(out Writer, key string, vals []string) {
	keyword(out, key)
	if len(vals) > 0 {
		Separator(out)
		appendList(out, vals)
	}
}

func appendList(out Writer, vals []string) {
	for ind, val := range vals {
		if ind > 0 {
			ItemSeparator(out)
		}
		out.PushCmd(val)
	}
}
