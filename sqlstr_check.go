package sqlstr

import (
	"math"

	"github.com/mitranim/sqlp"
)

// Placeholder syntax of a database driver. See `Rebind`.
type Style uint8

const (
	// "$1", "$2". Postgres, the syntax produced by this package.
	StyleDollar Style = iota

	// "?". MySQL, SQLite.
	StyleQuestion

	// ":1", ":2". Oracle.
	StyleColon

	// "@p1", "@p2". SQL Server.
	StyleAtP
)

// Implement `fmt.Stringer`.
func (self Style) String() string {
	switch self {
	case StyleDollar:
		return `dollar`
	case StyleQuestion:
		return `question`
	case StyleColon:
		return `colon`
	case StyleAtP:
		return `at`
	default:
		return ``
	}
}

// Parses the output of `Style.String`.
func ParseStyle(src string) (Style, error) {
	switch src {
	case `dollar`, `postgres`, ``:
		return StyleDollar, nil
	case `question`, `mysql`, `sqlite`:
		return StyleQuestion, nil
	case `colon`, `oracle`:
		return StyleColon, nil
	case `at`, `sqlserver`:
		return StyleAtP, nil
	default:
		return 0, ErrInvalidInput.while(`parsing placeholder style`).becausef(`unknown style %q`, src)
	}
}

/*
Verifies that the ordinal placeholders in the text are exactly "$1" through
"$count", each appearing once, in ascending order. Quoted strings and comments
are skipped. This holds for every command built with this package, and is
required by `Rebind` for styles without explicit ordinals. Fails with
`ErrPlaceholderMismatch`, or with `ErrInvalidInput` if the text is malformed.
*/
func CheckPlaceholders(text string, count uint32) (err error) {
	defer rec(&err)

	var next uint32
	eachNode(text, func(node sqlp.Node) {
		ord, ok := node.(sqlp.NodeOrdinalParam)
		if !ok {
			return
		}
		next++
		if ordinal(ord, `checking placeholders`) != next {
			panic(ErrPlaceholderMismatch.while(`checking placeholders`).becausef(
				`expected $%v, found $%v`, next, int(ord),
			))
		}
	})

	if next != count {
		return ErrPlaceholderMismatch.while(`checking placeholders`).becausef(
			`found %v placeholders for %v arguments`, next, count,
		)
	}
	return nil
}

/*
Converts "$N" placeholders to the given style. Quoted strings and comments are
left as-is. For `StyleQuestion`, placeholders must be dense and ascending, see
`CheckPlaceholders`, since "?" carries no ordinal. Example:

	text, err := sqlstr.Rebind(`SELECT $1, $2`, sqlstr.StyleQuestion)
	// SELECT ?, ?
*/
func Rebind(text string, style Style) (_ string, err error) {
	if style == StyleDollar {
		return text, nil
	}

	defer rec(&err)

	buf := make([]byte, 0, len(text))
	var next sqlp.NodeOrdinalParam

	eachNode(text, func(node sqlp.Node) {
		ord, ok := node.(sqlp.NodeOrdinalParam)
		if !ok {
			node.Append(&buf)
			return
		}
		num := ordinal(ord, `rebinding placeholders`)

		switch style {
		case StyleQuestion:
			next++
			if ord != next {
				panic(ErrPlaceholderMismatch.while(`rebinding placeholders`).becausef(
					`expected $%v, found $%v`, int(next), int(ord),
				))
			}
			buf = append(buf, '?')

		case StyleColon:
			buf = append(buf, ':')
			buf = appendUint32(buf, num)

		case StyleAtP:
			buf = append(buf, `@p`...)
			buf = appendUint32(buf, num)

		default:
			panic(ErrInvalidInput.while(`rebinding placeholders`).becausef(`unknown style %v`, uint8(style)))
		}
	})

	return bytesToMutableString(buf), nil
}

/*
Converts a tokenized "$N" into a placeholder number. Numbers outside of
1..MaxUint32 can't be produced by a `Command` and panic with
`ErrPlaceholderMismatch`.
*/
func ordinal(ord sqlp.NodeOrdinalParam, while string) uint32 {
	if ord <= 0 || uint64(ord) > math.MaxUint32 {
		panic(ErrPlaceholderMismatch.while(while).becausef(
			`placeholder $%v is out of range`, int(ord),
		))
	}
	return uint32(ord)
}

/*
Calls the function for each node of the tokenized text. The tokenizer panics on
malformed text, such as an unclosed quote; such panics are converted into
`ErrInvalidInput` by the caller's `rec`.
*/
func eachNode(text string, fun func(sqlp.Node)) {
	defer func() {
		val := recover()
		if val == nil {
			return
		}
		if err, ok := val.(Err); ok {
			panic(err)
		}
		err, _ := val.(error)
		if err != nil {
			panic(ErrInvalidInput.while(`tokenizing SQL`).because(err))
		}
		panic(val)
	}()

	tokenizer := sqlp.Tokenizer{Source: text}
	for {
		node := tokenizer.Next()
		if node == nil {
			return
		}
		fun(node)
	}
}

/*
Runs the function, converting a panic with an error value into a returned
error. Misuse of writers, such as writing to a borrowed command or a closed
group, panics; this allows to handle it as an error instead:

	err := sqlstr.Catch(func() {
		group := sqlstr.OpenGroup(cmd)
		cmd.PushCmd(`oops`)
		group.Close()
	})
	// errors.Is(err, sqlstr.ErrWriterBorrowed)
*/
func Catch(fun func()) (err error) {
	defer rec(&err)
	if fun != nil {
		fun()
	}
	return
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}
