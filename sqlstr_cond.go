package sqlstr

import (
	"strings"
)

/*
Appends "lhs op rhs", separated from the previous text if necessary. Example:

	sqlstr.LhsBinaryRhs(cmd, sqlstr.Lit(`user.id`), sqlstr.CmpEq, sqlstr.Val(32))
	// user.id = $1
*/
func LhsBinaryRhs(out Writer, lhs Expr, op BinaryOp, rhs Expr) error {
	SeparatorOptional(out)
	err := out.PushExpr(lhs)
	if err != nil {
		return err
	}
	return BinaryRhs(out, op, rhs)
}

// Appends "op rhs", continuing a binary expression whose left side has already
// been written.
func BinaryRhs(out Writer, op BinaryOp, rhs Expr) error {
	SeparatorOptional(out)
	out.PushCmd(op.String())
	Separator(out)
	return out.PushExpr(rhs)
}

// Appends "op rhs", for example "NOT active".
func UnaryRhs(out Writer, op UnaryOp, rhs Expr) error {
	SeparatorOptional(out)
	out.PushCmd(op.String())
	if _, ok := op.(MathUn); !ok {
		Separator(out)
	}
	return out.PushExpr(rhs)
}

/*
Appends a logical operator joining the previous condition with the next one.
Does nothing at the start of a condition list: when the text is empty or ends
with "WHERE", "ON", "HAVING" or "(". This allows to append conditions in a loop
without special-casing the first one:

	sqlstr.Where(cmd)
	for _, val := range filters {
		sqlstr.ContinueCondition(cmd, sqlstr.And)
		err := sqlstr.LhsBinaryRhs(cmd, sqlstr.Lit(val.Col), sqlstr.CmpEq, sqlstr.Val(val.Val))
		...
	}
*/
func ContinueCondition(out Writer, op LogicBi) {
	tail := trimSpaceSuffix(out.String())
	if tail == `` || strings.HasSuffix(tail, `(`) ||
		hasKeywordSuffix(tail, `WHERE`) ||
		hasKeywordSuffix(tail, `ON`) ||
		hasKeywordSuffix(tail, `HAVING`) {
		return
	}

	SeparatorOptional(out)
	out.PushCmd(op.String())
}

// Appends "BETWEEN lo AND hi".
func Between(out Writer, lo, hi Expr) error {
	SeparatorOptional(out)
	out.PushCmd(`BETWEEN `)
	err := out.PushExpr(lo)
	if err != nil {
		return err
	}
	out.PushCmd(` AND `)
	return out.PushExpr(hi)
}

// Appends "IS NULL".
func IsNull(out Writer) {
	SeparatorOptional(out)
	out.PushCmd(`IS NULL`)
}

// Appends "IS NOT NULL".
func IsNotNull(out Writer) {
	SeparatorOptional(out)
	out.PushCmd(`IS NOT NULL`)
}

/*
Appends "IN" and opens a group for the list. The caller must close the group:

	group := sqlstr.In(cmd)
	err := sqlstr.Values(group, 10, 20)
	group.Close()
	// IN ($1, $2)
*/
func In(out Writer) *Group {
	SeparatorOptional(out)
	out.PushCmd(`IN`)
	return OpenGroup(out)
}

/*
Appends "IN (...)" with one placeholder per value. Fails with
`ErrArgumentNotFound` when there are no values, since "IN ()" is invalid SQL.
*/
func InValues(out Writer, vals ...any) error {
	if len(vals) == 0 {
		return ErrArgumentNotFound.while(`appending IN list`)
	}
	group := In(out)
	defer group.Close()
	return Values(group, vals...)
}

// Appends "CAST (expr AS typ)".
func Cast(out Writer, val Expr, typ string) error {
	SeparatorOptional(out)
	out.PushCmd(`CAST (`)
	err := out.PushExpr(val)
	if err != nil {
		return err
	}
	out.PushCmd(` AS `)
	out.PushCmd(typ)
	out.PushCmd(`)`)
	return nil
}

// True if the text ends with the keyword as a separate word.
func hasKeywordSuffix(text, word string) bool {
	if !strings.HasSuffix(text, word) {
		return false
	}
	rest := text[:len(text)-len(word)]
	return rest == `` || !isIdentChar(rest[len(rest)-1])
}

func isIdentChar(char byte) bool {
	return isDigit(char) || char == '_' || char == '.' ||
		(char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}
