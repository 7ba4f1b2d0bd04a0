package sqlstr

// Appends "GROUP BY" followed by the columns.
func GroupBy(out Writer, cols ...string) { keywordList(out, `GROUP BY`, cols) }

// Sort direction in `Order`.
type Dir uint8

const (
	DirNone Dir = iota
	DirAsc
	DirDesc
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self Dir) String() string {
	switch self {
	case DirAsc:
		return `ASC`
	case DirDesc:
		return `DESC`
	default:
		return ``
	}
}

// Nulls placement in `Order`.
type Nulls uint8

const (
	NullsNone Nulls = iota
	NullsFirst
	NullsLast
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self Nulls) String() string {
	switch self {
	case NullsFirst:
		return `NULLS FIRST`
	case NullsLast:
		return `NULLS LAST`
	default:
		return ``
	}
}

/*
Single element of "ORDER BY". If `Using` is set, it takes priority over `Dir`
and renders "USING op".
*/
type Order struct {
	Column string
	Dir    Dir
	Using  Cmp
	Nulls  Nulls

	HasUsing bool
}

// Shortcut for an ascending `Order`.
func Asc(col string) Order { return Order{Column: col, Dir: DirAsc} }

// Shortcut for a descending `Order`.
func Desc(col string) Order { return Order{Column: col, Dir: DirDesc} }

// Returns a copy ordering by the given operator, for example "USING >".
func (self Order) By(op Cmp) Order {
	self.Using = op
	self.HasUsing = true
	return self
}

// Returns a copy with the given nulls placement.
func (self Order) WithNulls(val Nulls) Order {
	self.Nulls = val
	return self
}

func (self Order) write(out Writer) {
	out.PushCmd(self.Column)

	if self.HasUsing {
		out.PushCmd(` USING `)
		out.PushCmd(self.Using.String())
	} else if self.Dir != DirNone {
		Separator(out)
		out.PushCmd(self.Dir.String())
	}

	if self.Nulls != NullsNone {
		Separator(out)
		out.PushCmd(self.Nulls.String())
	}
}

// Appends "ORDER BY" followed by the order elements.
func OrderBy(out Writer, vals ...Order) {
	keyword(out, `ORDER BY`)
	for ind, val := range vals {
		if ind == 0 {
			Separator(out)
		} else {
			ItemSeparator(out)
		}
		val.write(out)
	}
}

// Appends "LIMIT $N", binding the count.
func Limit(out Writer, count uint64) error {
	keyword(out, `LIMIT`)
	Separator(out)
	return out.PushValue(count)
}

// Appends "OFFSET $N", binding the offset.
func Offset(out Writer, start uint64) error {
	keyword(out, `OFFSET`)
	Separator(out)
	return out.PushValue(start)
}

// Join type for `Join`.
type JoinType uint8

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self JoinType) String() string {
	switch self {
	case JoinInner:
		return `INNER`
	case JoinLeft:
		return `LEFT`
	case JoinRight:
		return `RIGHT`
	case JoinFull:
		return `FULL`
	case JoinCross:
		return `CROSS`
	default:
		panic(errUnknownOp(`join`, uint8(self)))
	}
}

/*
Appends "<type> JOIN table", with "AS alias" if the alias is non-empty. Follow
with `JoinOn` or `JoinUsing`, except for `JoinCross`.
*/
func Join(out Writer, typ JoinType, table, alias string) {
	keyword(out, typ.String())
	out.PushCmd(` JOIN `)
	out.PushCmd(table)
	if alias != `` {
		out.PushCmd(` AS `)
		out.PushCmd(alias)
	}
}

// Appends "CROSS JOIN table".
func CrossJoin(out Writer, table string) { Join(out, JoinCross, table, ``) }

// Appends "ON". Follow with conditions.
func JoinOn(out Writer) { keyword(out, `ON`) }

/*
Appends "USING (col, ...)". Fails with `ErrArgumentNotFound` when there are no
columns, since "USING ()" is invalid SQL. Nothing is written on failure.
*/
func JoinUsing(out Writer, cols ...string) error {
	if len(cols) == 0 {
		return ErrArgumentNotFound.while(`appending JOIN USING`)
	}
	keyword(out, `USING (`)
	appendList(out, cols)
	out.PushCmd(`)`)
	return nil
}
