/*
SQL Strings: incremental builder of SQL command text with ordinal placeholders.
Oriented towards writing plain SQL fragment by fragment, while the library takes
care of spacing, commas and argument numbering.

Key features:

• Functions append fragments to a `Writer` and decide what separator is needed
by looking at the text written so far. They keep no state, so they can be
called in any order and repeatedly.

• Every bound value is pushed into a caller-supplied `ArgBuffer` and rendered
as "$N", where N is the argument count after the push. Placeholders are always
dense and ascending.

• A rejected value leaves both the text and the arguments unchanged.

• Parenthesized groups borrow the enclosing writer until closed, and closing is
idempotent, so `defer group.Close()` is always safe.

• Bounded commands via `Command.MaxLen`, for callers that must not grow
buffers without limit.

• Staged SELECT builder, struct helpers, placeholder verification, and
conversion to other placeholder styles.

Driver-specific argument buffers live in the sub-packages "pg" (pgx) and
"sqldb" (database/sql).

Example:

	cmd := sqlstr.NewCommand(&sqlstr.Args{})

	sqlstr.Select(cmd)
	sqlstr.Columns(cmd, `id`, `name`)
	sqlstr.FromTables(cmd, `user`)
	sqlstr.Where(cmd)
	err := sqlstr.LhsBinaryRhs(cmd, sqlstr.Lit(`id`), sqlstr.CmpEq, sqlstr.Val(10))

	text, args, err := cmd.Reify()
	// SELECT id, name FROM user WHERE id = $1
	// []any{10}
*/
package sqlstr
