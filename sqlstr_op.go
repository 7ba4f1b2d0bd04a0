package sqlstr

/*
Binary operator usable in `LhsBinaryRhs` and `BinaryRhs`. The set is closed:
implemented only by `Cmp`, `LogicBi`, and `MathBi`.
*/
type BinaryOp interface {
	String() string
	binaryOp()
}

/*
Unary operator usable in `UnaryRhs`. The set is closed: implemented only by
`LogicUn` and `MathUn`.
*/
type UnaryOp interface {
	String() string
	unaryOp()
}

// Comparison operator.
type Cmp uint8

const (
	CmpEq Cmp = iota
	CmpNeq
	CmpGt
	CmpGte
	CmpLt
	CmpLte
	CmpIs
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self Cmp) String() string {
	switch self {
	case CmpEq:
		return `=`
	case CmpNeq:
		return `<>`
	case CmpGt:
		return `>`
	case CmpGte:
		return `>=`
	case CmpLt:
		return `<`
	case CmpLte:
		return `<=`
	case CmpIs:
		return `IS`
	default:
		panic(errUnknownOp(`comparison`, uint8(self)))
	}
}

func (Cmp) binaryOp() {}

// Binary logical operator.
type LogicBi uint8

const (
	And LogicBi = iota
	Or
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self LogicBi) String() string {
	switch self {
	case And:
		return `AND`
	case Or:
		return `OR`
	default:
		panic(errUnknownOp(`logical`, uint8(self)))
	}
}

func (LogicBi) binaryOp() {}

// Unary logical operator.
type LogicUn uint8

const Not LogicUn = 0

// Implement `fmt.Stringer` by returning the SQL representation.
func (self LogicUn) String() string {
	if self == Not {
		return `NOT`
	}
	panic(errUnknownOp(`logical`, uint8(self)))
}

func (LogicUn) unaryOp() {}

// Binary math operator, Postgres syntax.
type MathBi uint8

const (
	MathAdd MathBi = iota
	MathSub
	MathMul
	MathDiv
	MathMod
	MathPow
	MathBitAnd
	MathBitOr
	MathBitXor
	MathShiftLeft
	MathShiftRight
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self MathBi) String() string {
	switch self {
	case MathAdd:
		return `+`
	case MathSub:
		return `-`
	case MathMul:
		return `*`
	case MathDiv:
		return `/`
	case MathMod:
		return `%`
	case MathPow:
		return `^`
	case MathBitAnd:
		return `&`
	case MathBitOr:
		return `|`
	case MathBitXor:
		return `#`
	case MathShiftLeft:
		return `<<`
	case MathShiftRight:
		return `>>`
	default:
		panic(errUnknownOp(`math`, uint8(self)))
	}
}

func (MathBi) binaryOp() {}

// Unary math operator, Postgres syntax.
type MathUn uint8

const (
	MathNeg MathUn = iota
	MathBitNot
)

// Implement `fmt.Stringer` by returning the SQL representation.
func (self MathUn) String() string {
	switch self {
	case MathNeg:
		return `-`
	case MathBitNot:
		return `~`
	default:
		panic(errUnknownOp(`math`, uint8(self)))
	}
}

func (MathUn) unaryOp() {}

func errUnknownOp(kind string, val uint8) Err {
	return ErrInvalidInput.while(`encoding operator`).becausef(`unknown %v operator %v`, kind, val)
}
