package sqlstr

// Appends "INSERT INTO table".
func InsertInto(out Writer, table string) {
	keyword(out, `INSERT INTO`)
	Separator(out)
	out.PushCmd(table)
}

/*
Appends "(col, ...)", the column tuple of "INSERT INTO". Fails with
`ErrArgumentNotFound` when there are no columns.
*/
func Tuple(out Writer, cols ...string) error {
	if len(cols) == 0 {
		return ErrArgumentNotFound.while(`appending column tuple`)
	}
	group := OpenGroup(out)
	defer group.Close()
	appendList(group, cols)
	return nil
}

/*
Appends "VALUES ($1, ...), ($N, ...)" with one group per row. Fails with
`ErrArgumentNotFound` when there are no rows or a row is empty; the check
happens before anything is written.
*/
func ValuesRows(out Writer, rows ...[]any) error {
	if len(rows) == 0 {
		return ErrArgumentNotFound.while(`appending VALUES rows`)
	}
	for ind, row := range rows {
		if len(row) == 0 {
			return ErrArgumentNotFound.while(`appending VALUES rows`).becausef(`row %v is empty`, ind)
		}
	}

	keyword(out, `VALUES`)
	for ind, row := range rows {
		if ind > 0 {
			out.PushCmd(`,`)
		}
		err := valuesRow(out, row)
		if err != nil {
			return err
		}
	}
	return nil
}

func valuesRow(out Writer, vals []any) error {
	group := OpenGroup(out)
	defer group.Close()
	return Values(group, vals...)
}

// Conflict target kind for `OnConflict`.
type ConflictTarget struct {
	Constraint string
	Index      string
}

// Action for `OnConflict`.
type ConflictAction uint8

const (
	DoNothing ConflictAction = iota
	DoUpdate
)

/*
Appends "ON CONFLICT [target] DO NOTHING|DO UPDATE". The target is
"ON CONSTRAINT name" when `Constraint` is set, otherwise the `Index` expression
when set, otherwise omitted. After `DoUpdate`, continue with `SetColumn`.
*/
func OnConflict(out Writer, target ConflictTarget, action ConflictAction) {
	keyword(out, `ON CONFLICT`)

	if target.Constraint != `` {
		out.PushCmd(` ON CONSTRAINT `)
		out.PushCmd(target.Constraint)
	} else if target.Index != `` {
		Separator(out)
		out.PushCmd(target.Index)
	}

	if action == DoUpdate {
		out.PushCmd(` DO UPDATE`)
	} else {
		out.PushCmd(` DO NOTHING`)
	}
}

// Appends "UPDATE table", with "AS alias" if the alias is non-empty.
func UpdateTable(out Writer, table, alias string) {
	keyword(out, `UPDATE`)
	Separator(out)
	out.PushCmd(table)
	if alias != `` {
		out.PushCmd(` AS `)
		out.PushCmd(alias)
	}
}

/*
Appends "SET col = ". Follow with the new value:

	sqlstr.SetColumn(cmd, `name`)
	err := cmd.PushExpr(sqlstr.Val(`Rust`))
	// SET name = $1
*/
func SetColumn(out Writer, col string) {
	keyword(out, `SET`)
	Separator(out)
	out.PushCmd(col)
	out.PushCmd(` = `)
}

/*
Appends "SET col = $N" for the first pair and ", col = $N" for the rest,
binding the values. Fails with `ErrArgumentNotFound` when there are no columns
or when the lengths differ.
*/
func SetColumns(out Writer, cols []string, vals []any) error {
	if len(cols) == 0 || len(cols) != len(vals) {
		return ErrArgumentNotFound.while(`appending SET clause`).becausef(
			`got %v columns and %v values`, len(cols), len(vals),
		)
	}

	keyword(out, `SET`)
	for ind, col := range cols {
		if ind == 0 {
			Separator(out)
		} else {
			ItemSeparator(out)
		}
		out.PushCmd(col)
		out.PushCmd(` = `)
		err := out.PushValue(vals[ind])
		if err != nil {
			return err
		}
	}
	return nil
}

// Appends "SET (col, ...) =". Follow with a row or a sub-select.
func SetTuple(out Writer, cols ...string) {
	keyword(out, `SET (`)
	appendList(out, cols)
	out.PushCmd(`) =`)
}

// Appends "DELETE FROM table".
func DeleteFrom(out Writer, table string) {
	keyword(out, `DELETE FROM`)
	Separator(out)
	out.PushCmd(table)
}

// Appends "USING" followed by the tables, for "DELETE FROM".
func DeleteUsing(out Writer, tables ...string) { keywordList(out, `USING`, tables) }
