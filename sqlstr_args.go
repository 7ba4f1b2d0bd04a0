package sqlstr

import (
	"math"
)

/*
Slice-based `ArgBuffer`. Accepts any value. The contents are suitable for
passing to "database/sql" and most drivers as-is:

	cmd := sqlstr.NewCommand(new(sqlstr.Args))
	...
	db.Query(cmd.String(), *cmd.Args...)
*/
type Args []any

var _ = ArgBuffer((*Args)(nil))

// Implement `ArgBuffer`.
func (self *Args) Push(val any) error {
	if uint64(len(*self)) >= math.MaxUint32 {
		return ErrInvalidInput.while(`pushing argument`).becausef(`too many arguments`)
	}
	*self = append(*self, val)
	return nil
}

// Implement `ArgBuffer`.
func (self *Args) Count() uint32 { return uint32(len(*self)) }

/*
`ArgBuffer` that counts and discards values. Useful for generating SQL text
when the arguments are supplied separately.
*/
type Void struct{ N uint32 }

var _ = ArgBuffer((*Void)(nil))

// Implement `ArgBuffer`.
func (self *Void) Push(any) error {
	if self.N == math.MaxUint32 {
		return ErrInvalidInput.while(`pushing argument`).becausef(`too many arguments`)
	}
	self.N++
	return nil
}

// Implement `ArgBuffer`.
func (self *Void) Count() uint32 { return self.N }
