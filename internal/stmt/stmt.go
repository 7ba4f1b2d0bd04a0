// Package stmt describes SQL statements in YAML and renders them with sqlstr.
package stmt

import (
	"os"
	"strings"

	"github.com/mitranim/sqlstr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Statement kinds.
const (
	KindSelect = "select"
	KindInsert = "insert"
	KindUpdate = "update"
	KindDelete = "delete"
)

// Statement is a single SQL statement described in YAML.
type Statement struct {
	Kind      string    `yaml:"kind"`
	Table     string    `yaml:"table"`
	Alias     string    `yaml:"alias"`
	Distinct  bool      `yaml:"distinct"`
	Columns   []string  `yaml:"columns"`
	Joins     []Join    `yaml:"joins"`
	Where     []Cond    `yaml:"where"`
	Logic     string    `yaml:"logic"` // "and" (default) | "or"
	GroupBy   []string  `yaml:"group_by"`
	OrderBy   []Order   `yaml:"order_by"`
	Limit     *uint64   `yaml:"limit"`
	Offset    *uint64   `yaml:"offset"`
	Lock      *Lock     `yaml:"lock"`
	Values    []Assign  `yaml:"values"` // insert
	Rows      [][]Value `yaml:"rows"`   // insert, several rows for Columns
	Set       []Assign  `yaml:"set"`    // update
	Using     []string  `yaml:"using"`  // delete
	Conflict  *Conflict `yaml:"on_conflict"`
	Returning []string  `yaml:"returning"`
}

// Join is a JOIN clause.
type Join struct {
	Type  string   `yaml:"type"` // inner | left | right | full | cross
	Table string   `yaml:"table"`
	Alias string   `yaml:"alias"`
	On    []Cond   `yaml:"on"`
	Using []string `yaml:"using"`
}

// Cond is a single condition. Exactly one of Value, Values, Ref is used,
// depending on Op.
type Cond struct {
	Column string  `yaml:"column"`
	Op     string  `yaml:"op"`
	Value  Value   `yaml:"value"`
	Values []Value `yaml:"values"` // in | between
	Ref    string  `yaml:"ref"`    // compare with another column
	Not    bool    `yaml:"not"`
}

// Order is an ORDER BY element.
type Order struct {
	Column string `yaml:"column"`
	Dir    string `yaml:"dir"`   // asc | desc
	Nulls  string `yaml:"nulls"` // first | last
}

// Lock is a row-level locking clause.
type Lock struct {
	Strength string   `yaml:"strength"` // update | no_key_update | share | key_share
	Wait     string   `yaml:"wait"`     // nowait | skip_locked
	Of       []string `yaml:"of"`
}

// Assign is a column with its value.
type Assign struct {
	Column string `yaml:"column"`
	Value  Value  `yaml:"value"`
}

// Conflict is an ON CONFLICT clause.
type Conflict struct {
	Constraint string   `yaml:"constraint"`
	Target     string   `yaml:"target"`
	Set        []Assign `yaml:"set"` // empty means DO NOTHING
}

// Load reads a statement from a YAML file.
func Load(path string) (Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Statement{}, err
	}
	return Parse(data)
}

// Parse decodes a statement from YAML.
func Parse(data []byte) (Statement, error) {
	var out Statement
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Statement{}, errors.Wrap(err, "decoding statement")
	}
	out.Kind = strings.ToLower(strings.TrimSpace(out.Kind))
	if out.Kind == "" {
		out.Kind = KindSelect
	}
	if out.Table == "" {
		return Statement{}, errors.New("statement has no table")
	}
	return out, nil
}

// Render writes the statement to the writer.
func (s Statement) Render(out sqlstr.Writer) error {
	switch s.Kind {
	case KindSelect:
		return s.renderSelect(out)
	case KindInsert:
		return s.renderInsert(out)
	case KindUpdate:
		return s.renderUpdate(out)
	case KindDelete:
		return s.renderDelete(out)
	default:
		return errors.Errorf("unknown statement kind %q", s.Kind)
	}
}

func (s Statement) renderSelect(out sqlstr.Writer) error {
	if s.Distinct {
		sqlstr.SelectDistinct(out)
	} else {
		sqlstr.Select(out)
	}

	if len(s.Columns) == 0 {
		sqlstr.Columns(out, "*")
	} else {
		sqlstr.Columns(out, s.Columns...)
	}

	sqlstr.FromTables(out, tableExpr(s.Table, s.Alias))

	for _, join := range s.Joins {
		if err := renderJoin(out, join); err != nil {
			return err
		}
	}

	if err := s.renderWhere(out); err != nil {
		return err
	}

	if len(s.GroupBy) > 0 {
		sqlstr.GroupBy(out, s.GroupBy...)
	}

	if len(s.OrderBy) > 0 {
		orders := make([]sqlstr.Order, 0, len(s.OrderBy))
		for _, val := range s.OrderBy {
			order, err := val.order()
			if err != nil {
				return err
			}
			orders = append(orders, order)
		}
		sqlstr.OrderBy(out, orders...)
	}

	if s.Limit != nil {
		if err := sqlstr.Limit(out, *s.Limit); err != nil {
			return err
		}
	}
	if s.Offset != nil {
		if err := sqlstr.Offset(out, *s.Offset); err != nil {
			return err
		}
	}

	if s.Lock != nil {
		return s.Lock.render(out)
	}
	return nil
}

func (s Statement) renderInsert(out sqlstr.Writer) error {
	sqlstr.InsertInto(out, s.Table)

	var err error
	if len(s.Rows) > 0 {
		err = s.renderRows(out)
	} else {
		err = renderAssignRow(out, s.Values)
	}
	if err != nil {
		return err
	}

	if s.Conflict != nil {
		if err := s.Conflict.render(out); err != nil {
			return err
		}
	}
	return renderReturning(out, s.Returning)
}

func (s Statement) renderRows(out sqlstr.Writer) error {
	if err := sqlstr.Tuple(out, s.Columns...); err != nil {
		return err
	}
	rows := make([][]any, 0, len(s.Rows))
	for ind, row := range s.Rows {
		if len(row) != len(s.Columns) {
			return errors.Errorf("row %d has %d values for %d columns", ind, len(row), len(s.Columns))
		}
		rows = append(rows, values(row))
	}
	return sqlstr.ValuesRows(out, rows...)
}

func renderAssignRow(out sqlstr.Writer, vals []Assign) error {
	cols, args := splitAssigns(vals)
	if err := sqlstr.Tuple(out, cols...); err != nil {
		return err
	}
	return sqlstr.ValuesRows(out, args)
}

func (s Statement) renderUpdate(out sqlstr.Writer) error {
	sqlstr.UpdateTable(out, s.Table, s.Alias)

	cols, args := splitAssigns(s.Set)
	if err := sqlstr.SetColumns(out, cols, args); err != nil {
		return err
	}

	if err := s.renderWhere(out); err != nil {
		return err
	}
	return renderReturning(out, s.Returning)
}

func (s Statement) renderDelete(out sqlstr.Writer) error {
	sqlstr.DeleteFrom(out, tableExpr(s.Table, s.Alias))
	if len(s.Using) > 0 {
		sqlstr.DeleteUsing(out, s.Using...)
	}

	if err := s.renderWhere(out); err != nil {
		return err
	}
	return renderReturning(out, s.Returning)
}

func (s Statement) renderWhere(out sqlstr.Writer) error {
	if len(s.Where) == 0 {
		return nil
	}

	logic, err := parseLogic(s.Logic)
	if err != nil {
		return err
	}

	sqlstr.Where(out)
	return renderConds(out, logic, s.Where)
}

func renderJoin(out sqlstr.Writer, join Join) error {
	typ, err := parseJoinType(join.Type)
	if err != nil {
		return err
	}

	sqlstr.Join(out, typ, join.Table, join.Alias)

	switch {
	case typ == sqlstr.JoinCross:
		return nil
	case len(join.Using) > 0:
		return sqlstr.JoinUsing(out, join.Using...)
	case len(join.On) > 0:
		sqlstr.JoinOn(out)
		return renderConds(out, sqlstr.And, join.On)
	default:
		return errors.Errorf("join of %q needs on or using", join.Table)
	}
}

func renderConds(out sqlstr.Writer, logic sqlstr.LogicBi, conds []Cond) error {
	for _, cond := range conds {
		sqlstr.ContinueCondition(out, logic)
		if err := cond.render(out); err != nil {
			return err
		}
	}
	return nil
}

func (c Cond) render(out sqlstr.Writer) error {
	op := strings.ToLower(strings.TrimSpace(c.Op))
	if op == "" {
		op = "="
	}

	if c.Not {
		sqlstr.SeparatorOptional(out)
		out.PushCmd(sqlstr.Not.String())
	}

	switch op {
	case "is null":
		sqlstr.SeparatorOptional(out)
		out.PushCmd(c.Column)
		sqlstr.IsNull(out)
		return nil

	case "is not null":
		sqlstr.SeparatorOptional(out)
		out.PushCmd(c.Column)
		sqlstr.IsNotNull(out)
		return nil

	case "in":
		sqlstr.SeparatorOptional(out)
		out.PushCmd(c.Column)
		return sqlstr.InValues(out, values(c.Values)...)

	case "between":
		if len(c.Values) != 2 {
			return errors.Errorf("between on %q needs 2 values, got %d", c.Column, len(c.Values))
		}
		sqlstr.SeparatorOptional(out)
		out.PushCmd(c.Column)
		return sqlstr.Between(out, sqlstr.Val(c.Values[0].Val), sqlstr.Val(c.Values[1].Val))
	}

	cmp, err := parseCmp(op)
	if err != nil {
		return err
	}

	rhs := sqlstr.Val(c.Value.Val)
	if c.Ref != "" {
		rhs = sqlstr.Lit(c.Ref)
	}
	return sqlstr.LhsBinaryRhs(out, sqlstr.Lit(c.Column), cmp, rhs)
}

func (o Order) order() (sqlstr.Order, error) {
	out := sqlstr.Order{Column: o.Column}

	switch strings.ToLower(o.Dir) {
	case "":
	case "asc":
		out.Dir = sqlstr.DirAsc
	case "desc":
		out.Dir = sqlstr.DirDesc
	default:
		return out, errors.Errorf("unknown order direction %q", o.Dir)
	}

	switch strings.ToLower(o.Nulls) {
	case "":
	case "first":
		out.Nulls = sqlstr.NullsFirst
	case "last":
		out.Nulls = sqlstr.NullsLast
	default:
		return out, errors.Errorf("unknown nulls placement %q", o.Nulls)
	}
	return out, nil
}

func (l Lock) render(out sqlstr.Writer) error {
	var strength sqlstr.LockStrength
	switch strings.ToLower(l.Strength) {
	case "", "update":
		strength = sqlstr.LockUpdate
	case "no_key_update":
		strength = sqlstr.LockNoKeyUpdate
	case "share":
		strength = sqlstr.LockShare
	case "key_share":
		strength = sqlstr.LockKeyShare
	default:
		return errors.Errorf("unknown lock strength %q", l.Strength)
	}

	var wait sqlstr.LockWait
	switch strings.ToLower(l.Wait) {
	case "":
	case "nowait":
		wait = sqlstr.LockNoWait
	case "skip_locked":
		wait = sqlstr.LockSkipLocked
	default:
		return errors.Errorf("unknown lock wait %q", l.Wait)
	}

	sqlstr.RowLock(out, strength, wait, l.Of...)
	return nil
}

func (c Conflict) render(out sqlstr.Writer) error {
	target := sqlstr.ConflictTarget{Constraint: c.Constraint, Index: c.Target}
	if len(c.Set) == 0 {
		sqlstr.OnConflict(out, target, sqlstr.DoNothing)
		return nil
	}

	sqlstr.OnConflict(out, target, sqlstr.DoUpdate)
	cols, args := splitAssigns(c.Set)
	return sqlstr.SetColumns(out, cols, args)
}

func renderReturning(out sqlstr.Writer, cols []string) error {
	if len(cols) == 0 {
		return nil
	}
	sqlstr.Returning(out)
	sqlstr.Columns(out, cols...)
	return nil
}

func tableExpr(table, alias string) string {
	if alias == "" {
		return table
	}
	return table + " AS " + alias
}

func splitAssigns(vals []Assign) ([]string, []any) {
	cols := make([]string, 0, len(vals))
	args := make([]any, 0, len(vals))
	for _, val := range vals {
		cols = append(cols, val.Column)
		args = append(args, val.Value.Val)
	}
	return cols, args
}

func values(vals []Value) []any {
	out := make([]any, 0, len(vals))
	for _, val := range vals {
		out = append(out, val.Val)
	}
	return out
}

func parseLogic(src string) (sqlstr.LogicBi, error) {
	switch strings.ToLower(src) {
	case "", "and":
		return sqlstr.And, nil
	case "or":
		return sqlstr.Or, nil
	default:
		return 0, errors.Errorf("unknown logical operator %q", src)
	}
}

func parseJoinType(src string) (sqlstr.JoinType, error) {
	switch strings.ToLower(src) {
	case "", "inner":
		return sqlstr.JoinInner, nil
	case "left":
		return sqlstr.JoinLeft, nil
	case "right":
		return sqlstr.JoinRight, nil
	case "full":
		return sqlstr.JoinFull, nil
	case "cross":
		return sqlstr.JoinCross, nil
	default:
		return 0, errors.Errorf("unknown join type %q", src)
	}
}

func parseCmp(src string) (sqlstr.Cmp, error) {
	switch src {
	case "=", "eq":
		return sqlstr.CmpEq, nil
	case "<>", "!=", "neq":
		return sqlstr.CmpNeq, nil
	case ">", "gt":
		return sqlstr.CmpGt, nil
	case ">=", "gte":
		return sqlstr.CmpGte, nil
	case "<", "lt":
		return sqlstr.CmpLt, nil
	case "<=", "lte":
		return sqlstr.CmpLte, nil
	case "is":
		return sqlstr.CmpIs, nil
	default:
		return 0, errors.Errorf("unknown comparison operator %q", src)
	}
}
