package sqlstr

import (
	"database/sql/driver"
	"testing"
)

type Valuer struct{ val any }

func (self Valuer) Value() (driver.Value, error) { return self.val, nil }

type NullableValuer struct{ val any }

func (self *NullableValuer) Value() (driver.Value, error) {
	if self == nil {
		return nil, nil
	}
	return self.val, nil
}

type FailingValuer struct{}

func (FailingValuer) Value() (driver.Value, error) { return nil, ErrStr(`invalid value`) }

func TestStructColumns(t *testing.T) {
	exp := []string{`note`, `id`, `name`}

	eq(t, exp, StructColumns(User{}))
	eq(t, exp, StructColumns((*User)(nil)))
	eq(t, exp, StructColumns([]User(nil)))
	eq(t, exp, StructColumns(&[]*User{}))
	eq(t, []string(nil), StructColumns(Empty{}))

	panics(t, ErrInvalidInput, func() { StructColumns(nil) })
	panics(t, ErrInvalidInput, func() { StructColumns(10) })
	panics(t, ErrInvalidInput, func() { StructColumns([]string{}) })
}

func TestStructValues(t *testing.T) {
	cmd := resume(`SELECT`)
	try(t, StructValues(cmd, User{Id: 1, Name: `one`, Untagged: `skipped`}))
	testCmd(t, cmd, `SELECT $1, $2, $3`, (*string)(nil), int64(1), `one`)

	cmd = resume(`SELECT`)
	try(t, StructValues(cmd, (*User)(nil)))
	eq(t, `SELECT`, cmd.String())

	panics(t, ErrInvalidInput, func() { _ = StructValues(cmd, `str`) })
}

func TestStructInsert(t *testing.T) {
	note := `note`

	cmd := newCmd()
	try(t, StructInsert(cmd, `user`, &User{Embed: Embed{Note: &note}, Id: 1, Name: `one`}))
	testCmd(t, cmd, `INSERT INTO user (note, id, name) VALUES ($1, $2, $3)`, &note, int64(1), `one`)

	cmd = newCmd()
	try(t, StructInsert(cmd, `user`, Empty{}))
	testCmd(t, cmd, `INSERT INTO user DEFAULT VALUES`)

	cmd = newCmd()
	try(t, StructInsert(cmd, `user`, (*User)(nil)))
	testCmd(t, cmd, `INSERT INTO user DEFAULT VALUES`)
}

func TestStructSet(t *testing.T) {
	type Patch struct {
		Name   string `db:"name"`
		Active bool   `db:"active"`
	}

	cmd := newCmd()
	UpdateTable(cmd, `user`, ``)
	try(t, StructSet(cmd, Patch{`one`, true}))
	Where(cmd)
	try(t, LhsBinaryRhs(cmd, Lit(`id`), CmpEq, Val(1)))
	testCmd(t, cmd, `UPDATE user SET name = $1, active = $2 WHERE id = $3`, `one`, true, 1)

	cmd = resume(`UPDATE user`)
	errIs(t, ErrArgumentNotFound, StructSet(cmd, Empty{}))
	eq(t, `UPDATE user`, cmd.String())
}

func TestStructWhere(t *testing.T) {
	t.Run(`mixed`, func(t *testing.T) {
		cmd := resume(`SELECT * FROM user`)
		Where(cmd)
		try(t, StructWhere(cmd, User{Id: 1}))
		testCmd(t, cmd, `SELECT * FROM user WHERE note IS NULL AND id = $1 AND name = $2`, int64(1), ``)
	})

	t.Run(`valuers`, func(t *testing.T) {
		type Filter struct {
			A Valuer          `db:"a"`
			B Valuer          `db:"b"`
			C *NullableValuer `db:"c"`
			D *NullableValuer `db:"d"`
			E any             `db:"e"`
		}

		cmd := resume(`WHERE`)
		try(t, StructWhere(cmd, Filter{
			A: Valuer{10},
			B: Valuer{nil},
			D: &NullableValuer{`d`},
		}))

		eq(t, `WHERE a = $1 AND b IS NULL AND c IS NULL AND d = $2 AND e IS NULL`, cmd.String())
		eq(t, Args{Valuer{10}, &NullableValuer{`d`}}, *cmd.Args)
	})

	t.Run(`continues conditions`, func(t *testing.T) {
		type Filter struct {
			Id int64 `db:"id"`
		}

		cmd := resume(`WHERE deleted_at IS NULL`)
		try(t, StructWhere(cmd, Filter{3}))
		testCmd(t, cmd, `WHERE deleted_at IS NULL AND id = $1`, int64(3))
	})

	t.Run(`empty`, func(t *testing.T) {
		cmd := resume(`WHERE`)
		try(t, StructWhere(cmd, Empty{}))
		try(t, StructWhere(cmd, (*User)(nil)))
		eq(t, `WHERE`, cmd.String())
	})

	t.Run(`failing valuer`, func(t *testing.T) {
		type Filter struct {
			A FailingValuer `db:"a"`
		}

		cmd := resume(`WHERE`)
		err := StructWhere(cmd, Filter{})
		errIs(t, ErrArgument, err)
		errIs(t, ErrStr(`invalid value`), err)
	})
}
