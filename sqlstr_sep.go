package sqlstr

/*
Separator functions. Each one inspects the tail of the text written so far and
appends what's needed before the next fragment. They keep no state, so calling
them repeatedly or in any order is safe.
*/

// Appends a space unconditionally.
func Separator(out Writer) { out.PushCmd(` `) }

/*
Appends a space unless the text is empty or already ends with a space or an
opening paren. Safe to call before every fragment.
*/
func SeparatorOptional(out Writer) {
	text := out.String()
	if text == `` {
		return
	}
	switch text[len(text)-1] {
	case ' ', '(':
		return
	}
	out.PushCmd(` `)
}

// Appends ", " unconditionally.
func ItemSeparator(out Writer) { out.PushCmd(`, `) }

/*
Ensures the text ends with exactly one item separator. Trailing spaces are
skipped when looking at the tail:

	""               -> ""
	"SELECT $1,"     -> "SELECT $1, "
	"SELECT $1,   "  -> "SELECT $1,   "
	"SELECT $1"      -> "SELECT $1, "
	"SELECT id"      -> "SELECT id, "

Never produces two commas in a row. Text consisting only of spaces is left
alone, since there is nothing to separate from.
*/
func ItemSeparatorOptional(out Writer) {
	text := out.String()
	tail := trimSpaceSuffix(text)

	if tail == `` {
		return
	}

	if tail[len(tail)-1] == ',' {
		if len(tail) == len(text) {
			out.PushCmd(` `)
		}
		return
	}

	out.PushCmd(`, `)
}

/*
True if the text ends with an ordinal placeholder such as "$12", optionally
followed by spaces. A "$" without digits, or digits not preceded by "$", don't
count.
*/
func HasPlaceholderTail(text string) bool {
	text = trimSpaceSuffix(text)

	ind := len(text)
	for ind > 0 && isDigit(text[ind-1]) {
		ind--
	}
	return ind < len(text) && ind > 0 && text[ind-1] == ordinalParamPrefix
}

/*
Separator used before a sequence of bound values. Continues a list after a
placeholder or a trailing comma, otherwise behaves like `SeparatorOptional`,
which allows "SELECT" followed by values to become "SELECT $1".
*/
func valueSeparator(out Writer) {
	text := out.String()
	tail := trimSpaceSuffix(text)
	if HasPlaceholderTail(tail) || (tail != `` && tail[len(tail)-1] == ',') {
		ItemSeparatorOptional(out)
		return
	}
	SeparatorOptional(out)
}

func trimSpaceSuffix(text string) string {
	for len(text) > 0 && text[len(text)-1] == ' ' {
		text = text[:len(text)-1]
	}
	return text
}

func isDigit(char byte) bool { return char >= '0' && char <= '9' }
