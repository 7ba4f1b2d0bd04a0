package sqlstr

// Row-level lock strength for `RowLock`.
type LockStrength uint8

const (
	LockUpdate LockStrength = iota
	LockNoKeyUpdate
	LockShare
	LockKeyShare
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self LockStrength) String() string {
	switch self {
	case LockUpdate:
		return `UPDATE`
	case LockNoKeyUpdate:
		return `NO KEY UPDATE`
	case LockShare:
		return `SHARE`
	case LockKeyShare:
		return `KEY SHARE`
	default:
		panic(errUnknownOp(`lock strength`, uint8(self)))
	}
}

// Behavior of `RowLock` when rows are already locked.
type LockWait uint8

const (
	LockWaitDefault LockWait = iota
	LockNoWait
	LockSkipLocked
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self LockWait) String() string {
	switch self {
	case LockNoWait:
		return `NOWAIT`
	case LockSkipLocked:
		return `SKIP LOCKED`
	default:
		return ``
	}
}

/*
Appends a row-level locking clause such as "FOR UPDATE OF user SKIP LOCKED".
Tables are optional.
*/
func RowLock(out Writer, strength LockStrength, wait LockWait, tables ...string) {
	keyword(out, `FOR `)
	out.PushCmd(strength.String())

	if len(tables) > 0 {
		out.PushCmd(` OF `)
		appendList(out, tables)
	}

	if wait != LockWaitDefault {
		Separator(out)
		out.PushCmd(wait.String())
	}
}

// Table-level lock mode for `TableLock`.
type TableLockMode uint8

const (
	LockModeDefault TableLockMode = iota
	LockAccessShare
	LockRowShare
	LockRowExclusive
	LockShareUpdateExclusive
	LockShareMode
	LockShareRowExclusive
	LockExclusive
	LockAccessExclusive
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self TableLockMode) String() string {
	switch self {
	case LockModeDefault:
		return ``
	case LockAccessShare:
		return `ACCESS SHARE`
	case LockRowShare:
		return `ROW SHARE`
	case LockRowExclusive:
		return `ROW EXCLUSIVE`
	case LockShareUpdateExclusive:
		return `SHARE UPDATE EXCLUSIVE`
	case LockShareMode:
		return `SHARE`
	case LockShareRowExclusive:
		return `SHARE ROW EXCLUSIVE`
	case LockExclusive:
		return `EXCLUSIVE`
	case LockAccessExclusive:
		return `ACCESS EXCLUSIVE`
	default:
		panic(errUnknownOp(`table lock mode`, uint8(self)))
	}
}

/*
Options of `TableLock`. `Only` excludes descendant tables and requires exactly
one table.
*/
type TableLockOpt struct {
	Only   bool
	Mode   TableLockMode
	NoWait bool
}

/*
Appends "LOCK TABLE [ONLY] tables [IN mode MODE] [NOWAIT]". Fails with
`ErrArgumentNotFound` when there are no tables, and with `ErrInvalidInput`
when `Only` is combined with several tables. Nothing is written on failure.
*/
func TableLock(out Writer, opt TableLockOpt, tables ...string) error {
	if len(tables) == 0 {
		return ErrArgumentNotFound.while(`appending LOCK TABLE`)
	}
	if opt.Only && len(tables) > 1 {
		return ErrInvalidInput.while(`appending LOCK TABLE`).becausef(
			`ONLY requires exactly one table, got %v`, len(tables),
		)
	}

	keyword(out, `LOCK TABLE `)
	if opt.Only {
		out.PushCmd(`ONLY `)
	}
	appendList(out, tables)

	if opt.Mode != LockModeDefault {
		out.PushCmd(` IN `)
		out.PushCmd(opt.Mode.String())
		out.PushCmd(` MODE`)
	}
	if opt.NoWait {
		out.PushCmd(` NOWAIT`)
	}
	return nil
}
