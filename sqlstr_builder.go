package sqlstr

/*
Starts a staged SELECT builder with a new command holding the given argument
buffer. Each stage exposes only the calls valid at that point of the statement,
so the method chain reads like the resulting SQL:

	cols, err := sqlstr.NewSelect(&sqlstr.Args{}).Columns(`id`, `name`)
	...
	tables, err := cols.From(`user`)
	...
	text, args, err := tables.End().Reify()
	// SELECT id, name FROM user

Empty column, value or table lists fail with `ErrArgumentNotFound`. Argument
buffer failures are wrapped in `ErrArgument`. Exceeding `Command.MaxLen` fails
with `ErrCommandBuffer`.
*/
func NewSelect[A ArgBuffer](args A) SelectStage[A] {
	return StartSelect(NewCommand(args))
}

/*
Like `NewSelect`, but writes into an existing command, which allows to set
`Command.MaxLen` or to prepend text such as a CTE.
*/
func StartSelect[A ArgBuffer](cmd *Command[A]) SelectStage[A] {
	Select(cmd)
	return SelectStage[A]{cmd}
}

// Initial stage of `NewSelect`: "SELECT" has been written.
type SelectStage[A ArgBuffer] struct{ cmd *Command[A] }

// Appends the first column.
func (self SelectStage[A]) Column(col string) (ColumnStage[A], error) {
	Columns(self.cmd, col)
	return ColumnStage[A](self), self.cmd.Err()
}

// Appends the full column list. Fails if the list is empty.
func (self SelectStage[A]) Columns(cols ...string) (FromStage[A], error) {
	if len(cols) == 0 {
		return FromStage[A](self), ErrArgumentNotFound.while(`appending SELECT columns`)
	}
	Columns(self.cmd, cols...)
	return FromStage[A](self), self.cmd.Err()
}

// Appends the first bound value: "SELECT $1".
func (self SelectStage[A]) Value(val any) (ValueStage[A], error) {
	return ValueStage[A](self), Values(self.cmd, val)
}

/*
Appends the full list of bound values and finishes the statement. Fails if the
list is empty.
*/
func (self SelectStage[A]) Values(vals ...any) (*Command[A], error) {
	if len(vals) == 0 {
		return self.cmd, ErrArgumentNotFound.while(`appending SELECT values`)
	}
	return self.cmd, Values(self.cmd, vals...)
}

// Returns the command under construction.
func (self SelectStage[A]) Command() *Command[A] { return self.cmd }

// Implement `fmt.Stringer`.
func (self SelectStage[A]) String() string { return self.cmd.String() }

// Stage after `SelectStage.Column`.
type ColumnStage[A ArgBuffer] struct{ cmd *Command[A] }

// Appends another column.
func (self ColumnStage[A]) Column(col string) (ColumnStage[A], error) {
	ItemSeparator(self.cmd)
	self.cmd.PushCmd(col)
	return self, self.cmd.Err()
}

// Appends "FROM table".
func (self ColumnStage[A]) From(table string) (TableStage[A], error) {
	return FromStage[A](self).From(table)
}

// Implement `fmt.Stringer`.
func (self ColumnStage[A]) String() string { return self.cmd.String() }

// Stage after `SelectStage.Value`.
type ValueStage[A ArgBuffer] struct{ cmd *Command[A] }

// Appends another bound value.
func (self ValueStage[A]) Value(val any) (ValueStage[A], error) {
	return self, Values(self.cmd, val)
}

// Finishes the statement.
func (self ValueStage[A]) End() *Command[A] { return self.cmd }

// Implement `fmt.Stringer`.
func (self ValueStage[A]) String() string { return self.cmd.String() }

// Stage after `SelectStage.Columns`: a FROM clause may follow.
type FromStage[A ArgBuffer] struct{ cmd *Command[A] }

// Appends "FROM table".
func (self FromStage[A]) From(table string) (TableStage[A], error) {
	FromTables(self.cmd, table)
	return TableStage[A](self), self.cmd.Err()
}

/*
Appends "FROM" with the full table list. Fails if the list is empty.
*/
func (self FromStage[A]) FromTables(tables ...string) (TableStage[A], error) {
	if len(tables) == 0 {
		return TableStage[A](self), ErrArgumentNotFound.while(`appending FROM tables`)
	}
	FromTables(self.cmd, tables...)
	return TableStage[A](self), self.cmd.Err()
}

// Finishes the statement without a FROM clause.
func (self FromStage[A]) End() *Command[A] { return self.cmd }

// Implement `fmt.Stringer`.
func (self FromStage[A]) String() string { return self.cmd.String() }

// Stage after the first table of the FROM clause.
type TableStage[A ArgBuffer] struct{ cmd *Command[A] }

// Appends another table, comma-separated.
func (self TableStage[A]) From(table string) (TableStage[A], error) {
	ItemSeparator(self.cmd)
	self.cmd.PushCmd(table)
	return self, self.cmd.Err()
}

// Appends a join. Follow with `JoinStage.On` or `JoinStage.Using`.
func (self TableStage[A]) Join(typ JoinType, table, alias string) JoinStage[A] {
	Join(self.cmd, typ, table, alias)
	return JoinStage[A](self)
}

// Appends "WHERE".
func (self TableStage[A]) Where() WhereStage[A] {
	Where(self.cmd)
	return WhereStage[A](self)
}

// Finishes the statement.
func (self TableStage[A]) End() *Command[A] { return self.cmd }

// Implement `fmt.Stringer`.
func (self TableStage[A]) String() string { return self.cmd.String() }

// Stage after `TableStage.Join`.
type JoinStage[A ArgBuffer] struct{ cmd *Command[A] }

/*
Appends "ON lhs op rhs". Call `And`/`Or` on the result to add more
conditions to the join.
*/
func (self JoinStage[A]) On(lhs Expr, op BinaryOp, rhs Expr) (CondStage[A, TableStage[A]], error) {
	JoinOn(self.cmd)
	out := CondStage[A, TableStage[A]]{self.cmd, TableStage[A](self)}
	return out, out.cmdErr(LhsBinaryRhs(self.cmd, lhs, op, rhs))
}

// Appends "USING (cols)".
func (self JoinStage[A]) Using(cols ...string) (TableStage[A], error) {
	err := JoinUsing(self.cmd, cols...)
	if err != nil {
		return TableStage[A](self), err
	}
	return TableStage[A](self), self.cmd.Err()
}

// Stage after `TableStage.Where`: conditions may follow.
type WhereStage[A ArgBuffer] struct{ cmd *Command[A] }

// Appends the first condition "lhs op rhs".
func (self WhereStage[A]) Cond(lhs Expr, op BinaryOp, rhs Expr) (CondStage[A, WhereStage[A]], error) {
	out := CondStage[A, WhereStage[A]]{self.cmd, self}
	return out, out.cmdErr(LhsBinaryRhs(self.cmd, lhs, op, rhs))
}

// Returns the underlying writer for conditions built with the free functions.
func (self WhereStage[A]) Writer() Writer { return self.cmd }

// Finishes the statement.
func (self WhereStage[A]) End() *Command[A] { return self.cmd }

// Implement `fmt.Stringer`.
func (self WhereStage[A]) String() string { return self.cmd.String() }

/*
Stage after a condition. `And` and `Or` append further conditions; `Done`
returns to the enclosing stage.
*/
type CondStage[A ArgBuffer, S any] struct {
	cmd  *Command[A]
	next S
}

// Appends "AND lhs op rhs".
func (self CondStage[A, S]) And(lhs Expr, op BinaryOp, rhs Expr) (CondStage[A, S], error) {
	return self.cont(And, lhs, op, rhs)
}

// Appends "OR lhs op rhs".
func (self CondStage[A, S]) Or(lhs Expr, op BinaryOp, rhs Expr) (CondStage[A, S], error) {
	return self.cont(Or, lhs, op, rhs)
}

// Returns to the enclosing stage.
func (self CondStage[A, S]) Done() S { return self.next }

// Finishes the statement.
func (self CondStage[A, S]) End() *Command[A] { return self.cmd }

// Implement `fmt.Stringer`.
func (self CondStage[A, S]) String() string { return self.cmd.String() }

func (self CondStage[A, S]) cont(logic LogicBi, lhs Expr, op BinaryOp, rhs Expr) (CondStage[A, S], error) {
	ContinueCondition(self.cmd, logic)
	return self, self.cmdErr(LhsBinaryRhs(self.cmd, lhs, op, rhs))
}

func (self CondStage[A, S]) cmdErr(err error) error {
	if err != nil {
		return err
	}
	return self.cmd.Err()
}
