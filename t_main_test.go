package sqlstr

import (
	"errors"
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
)

type Embed struct {
	Note *string `db:"note"`
}

type User struct {
	Embed
	Id        int64  `db:"id"`
	Name      string `db:"name"`
	Untagged  string
	Dash      string `db:"-"`
	Untagged1 string `json:"untagged1"`
}

type Empty struct {
	Untagged string
}

/*
Rejects strings and counts everything else. Used for testing that a rejected
value leaves both the text and the count unchanged.
*/
type RejectStrings struct{ Args }

func (self *RejectStrings) Push(val any) error {
	if _, ok := val.(string); ok {
		return ErrStr(`strings are not allowed`)
	}
	return self.Args.Push(val)
}

type ErrStr string

func (self ErrStr) Error() string { return string(self) }

func newCmd() *Command[*Args] { return NewCommand(&Args{}) }

func resume(text string, args ...any) *Command[*Args] {
	buf := Args(args)
	return ResumeCommand(text, &buf)
}

func testCmd(t testing.TB, cmd *Command[*Args], expText string, expArgs ...any) {
	t.Helper()
	eq(t, nil, cmd.Err())
	eq(t, expText, cmd.String())
	eq(t, Args(expArgs), *cmd.Args)
	eq(t, nil, CheckPlaceholders(cmd.String(), cmd.Args.Count()))
}

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func try(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf(`unexpected error: %+v`, err)
	}
}

func errIs(t testing.TB, exp, act error) {
	t.Helper()
	if !errors.Is(act, exp) {
		t.Fatalf(`expected error %q, found %q`, exp, act)
	}
}

func panics(t testing.TB, exp error, fun func()) {
	t.Helper()
	err := Catch(fun)
	if err == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}
	errIs(t, exp, err)
}

func errContains(t testing.TB, msg string, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf(`expected an error containing %q, found nil`, msg)
	}
	str := fmt.Sprint(err)
	if !strings.Contains(str, msg) {
		t.Fatalf(`expected an error containing %q, found %q`, msg, str)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func strPtr(val string) *string { return &val }
