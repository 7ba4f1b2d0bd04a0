package sqlstr

import (
	"testing"

	"github.com/pingcap/tidb/pkg/parser"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

func TestCheckPlaceholders(t *testing.T) {
	try(t, CheckPlaceholders(``, 0))
	try(t, CheckPlaceholders(`SELECT 1`, 0))
	try(t, CheckPlaceholders(`SELECT $1, $2 FROM user WHERE id = $3`, 3))

	t.Run(`quoted`, func(t *testing.T) {
		try(t, CheckPlaceholders(`SELECT '$2', "$3", $1`, 1))
	})

	t.Run(`comments`, func(t *testing.T) {
		try(t, CheckPlaceholders("SELECT $1 -- $3\n, /* $5 */ $2", 2))
	})

	t.Run(`cast`, func(t *testing.T) {
		try(t, CheckPlaceholders(`SELECT $1::text`, 1))
	})

	t.Run(`out of order`, func(t *testing.T) {
		err := CheckPlaceholders(`SELECT $2, $1`, 2)
		errIs(t, ErrPlaceholderMismatch, err)
		errContains(t, `expected $1, found $2`, err)
	})

	t.Run(`duplicate`, func(t *testing.T) {
		err := CheckPlaceholders(`SELECT $1, $1`, 2)
		errIs(t, ErrPlaceholderMismatch, err)
		errContains(t, `expected $2, found $1`, err)
	})

	t.Run(`count mismatch`, func(t *testing.T) {
		err := CheckPlaceholders(`SELECT $1`, 2)
		errIs(t, ErrPlaceholderMismatch, err)
		errContains(t, `found 1 placeholders for 2 arguments`, err)

		errIs(t, ErrPlaceholderMismatch, CheckPlaceholders(`SELECT $1, $2`, 1))
	})

	t.Run(`out of range`, func(t *testing.T) {
		test := func(src string, count uint32) {
			t.Helper()
			err := CheckPlaceholders(src, count)
			errIs(t, ErrPlaceholderMismatch, err)
			errContains(t, `out of range`, err)
		}

		test(`SELECT $4294967297`, 1)
		test(`SELECT $1, $4294967298`, 2)
		test(`SELECT $0`, 1)

		err := CheckPlaceholders(`SELECT $4294967296`, 0)
		errIs(t, ErrPlaceholderMismatch, err)
		errContains(t, `placeholder $4294967296 is out of range`, err)
	})
}

func TestRebind(t *testing.T) {
	test := func(src string, style Style, exp string) {
		t.Helper()
		out, err := Rebind(src, style)
		try(t, err)
		eq(t, exp, out)
	}

	test(`SELECT $1, $2`, StyleDollar, `SELECT $1, $2`)
	test(`SELECT $2, $1`, StyleDollar, `SELECT $2, $1`)

	test(`SELECT $1, $2`, StyleQuestion, `SELECT ?, ?`)
	test(`SELECT id FROM user WHERE id = $1 AND name = '$2' AND role = $2`, StyleQuestion,
		`SELECT id FROM user WHERE id = ? AND name = '$2' AND role = ?`)
	test(`SELECT 1`, StyleQuestion, `SELECT 1`)

	test(`SELECT $1, $2`, StyleColon, `SELECT :1, :2`)
	test(`SELECT $2, $1`, StyleColon, `SELECT :2, :1`)
	test(`SELECT $10`, StyleAtP, `SELECT @p10`)
	test(`SELECT $1, $1`, StyleAtP, `SELECT @p1, @p1`)

	t.Run(`question requires dense placeholders`, func(t *testing.T) {
		_, err := Rebind(`SELECT $2, $1`, StyleQuestion)
		errIs(t, ErrPlaceholderMismatch, err)

		_, err = Rebind(`SELECT $1, $3`, StyleQuestion)
		errIs(t, ErrPlaceholderMismatch, err)
		errContains(t, `expected $2, found $3`, err)
	})

	t.Run(`out of range`, func(t *testing.T) {
		for _, style := range []Style{StyleQuestion, StyleColon, StyleAtP} {
			out, err := Rebind(`SELECT $4294967297`, style)
			errIs(t, ErrPlaceholderMismatch, err)
			errContains(t, `placeholder $4294967297 is out of range`, err)
			eq(t, ``, out)

			_, err = Rebind(`SELECT $0`, style)
			errIs(t, ErrPlaceholderMismatch, err)
		}

		out, err := Rebind(`SELECT $4294967295`, StyleColon)
		try(t, err)
		eq(t, `SELECT :4294967295`, out)
	})

	t.Run(`unknown style`, func(t *testing.T) {
		_, err := Rebind(`SELECT $1`, Style(100))
		errIs(t, ErrInvalidInput, err)
	})
}

func TestParseStyle(t *testing.T) {
	test := func(src string, exp Style) {
		t.Helper()
		out, err := ParseStyle(src)
		try(t, err)
		eq(t, exp, out)
	}

	test(``, StyleDollar)
	test(`dollar`, StyleDollar)
	test(`postgres`, StyleDollar)
	test(`question`, StyleQuestion)
	test(`mysql`, StyleQuestion)
	test(`sqlite`, StyleQuestion)
	test(`colon`, StyleColon)
	test(`oracle`, StyleColon)
	test(`at`, StyleAtP)
	test(`sqlserver`, StyleAtP)

	for _, val := range []Style{StyleDollar, StyleQuestion, StyleColon, StyleAtP} {
		test(val.String(), val)
	}
	eq(t, ``, Style(100).String())

	_, err := ParseStyle(`Postgres`)
	errIs(t, ErrInvalidInput, err)
	errContains(t, `unknown style "Postgres"`, err)
}

func TestRebind_mysqlParser(t *testing.T) {
	cmd := newCmd()
	Select(cmd)
	Columns(cmd, `id`, `name`)
	FromTables(cmd, `users`)
	Where(cmd)
	try(t, LhsBinaryRhs(cmd, Lit(`id`), CmpGt, Val(10)))
	ContinueCondition(cmd, And)
	SeparatorOptional(cmd)
	cmd.PushCmd(`name`)
	try(t, InValues(cmd, `one`, `two`))
	OrderBy(cmd, Desc(`created_at`))
	try(t, Limit(cmd, 100))

	testCmd(t, cmd,
		`SELECT id, name FROM users WHERE id > $1 AND name IN ($2, $3) ORDER BY created_at DESC LIMIT $4`,
		10, `one`, `two`, uint64(100),
	)

	text, err := Rebind(cmd.String(), StyleQuestion)
	try(t, err)
	eq(t, `SELECT id, name FROM users WHERE id > ? AND name IN (?, ?) ORDER BY created_at DESC LIMIT ?`, text)

	_, err = parser.New().ParseOneStmt(text, ``, ``)
	if err != nil {
		t.Fatalf(`failed to parse rebound text %q: %+v`, text, err)
	}
}
