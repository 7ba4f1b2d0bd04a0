package sqlstr

/*
Storage for bound arguments, supplied by the caller. `Push` must either store
the value and increment the count, or return an error and change nothing. This
package never inspects stored values.

This package provides `Args` and `Void`. Driver-specific implementations live in
the sub-packages "pg" and "sqldb".
*/
type ArgBuffer interface {
	Push(any) error
	Count() uint32
}

/*
Destination of SQL text and bound values. Implemented by `*Command` and
`*Group`. All clause functions in this package accept a `Writer`.

`String` returns the text written so far. The separator functions inspect it to
decide what to append, which is why they need no state of their own.
*/
type Writer interface {
	PushCmd(string)
	PushValue(any) error
	PushExpr(Expr) error
	String() string
}

type exprKind uint8

const (
	exprLit exprKind = iota
	exprVal
)

/*
Short for "expression". Either a literal SQL fragment, appended verbatim, or a
value bound as an argument and rendered as an ordinal placeholder such as "$1".
Construct via `Lit` or `Val`. The zero value is an empty literal.
*/
type Expr struct {
	kind  exprKind
	text  string
	value any
}

// Literal SQL fragment. Not escaped in any way.
func Lit(text string) Expr { return Expr{kind: exprLit, text: text} }

// Value to be bound as an argument.
func Val(value any) Expr { return Expr{kind: exprVal, value: value} }

// True if the expression is a bound value.
func (self Expr) IsVal() bool { return self.kind == exprVal }

// Literal text. Empty for bound values.
func (self Expr) Text() string { return self.text }

// Bound value. Nil for literals.
func (self Expr) Value() any { return self.value }

func pushExpr(out Writer, val Expr) error {
	if val.kind == exprVal {
		return out.PushValue(val.value)
	}
	out.PushCmd(val.text)
	return nil
}
