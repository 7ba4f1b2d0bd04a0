package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitranim/sqlstr"
)

func TestDialect(t *testing.T) {
	assert.Equal(t, sqlstr.StyleDollar, Postgres.Style())
	assert.Equal(t, sqlstr.StyleQuestion, SQLite.Style())
	assert.Equal(t, sqlstr.StyleQuestion, MySQL.Style())
	assert.Equal(t, `sqlite`, SQLite.String())
}

func TestArgsConvert(t *testing.T) {
	t.Run(`scalars`, func(t *testing.T) {
		args := Args{Dialect: MySQL}
		require.NoError(t, args.Push(10))
		require.NoError(t, args.Push(uint8(3)))
		require.NoError(t, args.Push(`str`))
		require.NoError(t, args.Push([]byte(`data`)))
		require.NoError(t, args.Push(nil))
		assert.Equal(t, []any{int64(10), int64(3), `str`, []byte(`data`), nil}, args.Values())
	})

	t.Run(`valuers`, func(t *testing.T) {
		var missing *decimal.Decimal
		amount := decimal.RequireFromString(`1.25`)

		args := Args{Dialect: Postgres}
		require.NoError(t, args.Push(amount))
		require.NoError(t, args.Push(missing))
		assert.Equal(t, []any{amount, nil}, args.Values())
	})

	t.Run(`postgres arrays`, func(t *testing.T) {
		args := Args{Dialect: Postgres}
		require.NoError(t, args.Push([]string{`a`, `b`}))
		require.NoError(t, args.Push([]int64{1, 2}))

		for ind, exp := range []string{`{"a","b"}`, `{1,2}`} {
			valuer, ok := args.Values()[ind].(driver.Valuer)
			require.True(t, ok)
			val, err := valuer.Value()
			require.NoError(t, err)
			assert.Equal(t, exp, val)
		}
	})

	t.Run(`sqlite time`, func(t *testing.T) {
		args := Args{Dialect: SQLite}
		require.NoError(t, args.Push(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
		assert.Equal(t, []any{`2024-01-02T03:04:05Z`}, args.Values())
	})

	t.Run(`rejected`, func(t *testing.T) {
		args := Args{Dialect: MySQL}
		assert.ErrorContains(t, args.Push([]string{`a`}), `converting argument of type []string`)
		assert.ErrorContains(t, args.Push(struct{}{}), `converting argument of type struct {}`)
		assert.Equal(t, uint32(0), args.Count())
	})
}

func TestBuild(t *testing.T) {
	build := func(dialect Dialect) (string, []any) {
		cmd := NewCommand(dialect)
		sqlstr.Select(cmd)
		sqlstr.Columns(cmd, `id`)
		sqlstr.FromTables(cmd, `user`)
		sqlstr.Where(cmd)
		require.NoError(t, sqlstr.LhsBinaryRhs(cmd, sqlstr.Lit(`id`), sqlstr.CmpEq, sqlstr.Val(1)))
		sqlstr.ContinueCondition(cmd, sqlstr.And)
		require.NoError(t, sqlstr.LhsBinaryRhs(cmd, sqlstr.Lit(`name`), sqlstr.CmpNeq, sqlstr.Val(`$2`)))

		text, args, err := Build(cmd)
		require.NoError(t, err)
		return text, args
	}

	text, args := build(Postgres)
	assert.Equal(t, `SELECT id FROM user WHERE id = $1 AND name <> $2`, text)
	assert.Equal(t, []any{int64(1), `$2`}, args)

	text, args = build(SQLite)
	assert.Equal(t, `SELECT id FROM user WHERE id = ? AND name <> ?`, text)
	assert.Equal(t, []any{int64(1), `$2`}, args)
}

func TestBuildCommandError(t *testing.T) {
	cmd := NewCommand(SQLite)
	cmd.MaxLen = 8
	sqlstr.Select(cmd)
	sqlstr.Columns(cmd, `id`, `name`)

	_, _, err := Build(cmd)
	assert.ErrorIs(t, err, sqlstr.ErrCommandBuffer)
}

type account struct {
	ID      uuid.UUID       `db:"id"`
	Balance decimal.Decimal `db:"balance"`
	Note    *string         `db:"note"`
	Created time.Time       `db:"created"`
	Skipped string
}

type accountFilter struct {
	ID   uuid.UUID `db:"id"`
	Note *string   `db:"note"`
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open(`sqlite3`, `:memory:`)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE account (id TEXT PRIMARY KEY, balance TEXT, note TEXT, created TEXT)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	src := account{
		ID:      uuid.MustParse(`6f1c2b9e-3d4a-4b5c-8d6e-7f8091a2b3c4`),
		Balance: decimal.RequireFromString(`10.50`),
		Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Skipped: `ignored`,
	}

	insert := NewCommand(SQLite)
	require.NoError(t, sqlstr.StructInsert(insert, `account`, src))
	assert.Equal(t, `INSERT INTO account (id, balance, note, created) VALUES ($1, $2, $3, $4)`, insert.String())

	res, err := Exec(ctx, db, insert)
	require.NoError(t, err)
	count, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	query := NewCommand(SQLite)
	sqlstr.Select(query)
	sqlstr.Columns(query, sqlstr.StructColumns((*account)(nil))...)
	sqlstr.FromTables(query, `account`)
	sqlstr.Where(query)
	require.NoError(t, sqlstr.StructWhere(query, accountFilter{ID: src.ID}))
	assert.Equal(t, `SELECT id, balance, note, created FROM account WHERE id = $1 AND note IS NULL`, query.String())

	rows, err := Query(ctx, db, query)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())

	var out account
	var created string
	require.NoError(t, rows.Scan(&out.ID, &out.Balance, &out.Note, &created))
	require.False(t, rows.Next())
	require.NoError(t, rows.Err())

	assert.Equal(t, src.ID, out.ID)
	assert.True(t, src.Balance.Equal(out.Balance))
	assert.Nil(t, out.Note)
	assert.Equal(t, `2024-01-02T03:04:05Z`, created)
}

func TestSQLiteUpdate(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	id := uuid.New()
	_, err := db.Exec(`INSERT INTO account (id, balance) VALUES (?, ?)`, id.String(), `1`)
	require.NoError(t, err)

	note := `frozen`
	update := NewCommand(SQLite)
	sqlstr.UpdateTable(update, `account`, ``)
	require.NoError(t, sqlstr.StructSet(update, struct {
		Balance decimal.Decimal `db:"balance"`
		Note    *string         `db:"note"`
	}{decimal.RequireFromString(`2.5`), &note}))
	sqlstr.Where(update)
	require.NoError(t, sqlstr.LhsBinaryRhs(update, sqlstr.Lit(`id`), sqlstr.CmpEq, sqlstr.Val(id)))

	_, err = Exec(ctx, db, update)
	require.NoError(t, err)

	var balance, gotNote string
	require.NoError(t, db.QueryRow(`SELECT balance, note FROM account WHERE id = ?`, id.String()).Scan(&balance, &gotNote))
	assert.Equal(t, `2.5`, balance)
	assert.Equal(t, `frozen`, gotNote)
}
