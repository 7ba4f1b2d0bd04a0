package sqlstr

/*
Parenthesized sub-expression. `OpenGroup` writes "(" and `.Close` writes the
matching ")". Implements `Writer` by forwarding to the enclosing writer.

While a group is open, it exclusively borrows the enclosing writer: writing to
the enclosing `*Command` or `*Group` directly panics with `ErrWriterBorrowed`.
Closing a group first closes its open nested group, if any, which keeps the
closing parens in reverse order of opening regardless of how the caller exits.
Use `defer` or `WithGroup` to close on every path:

	group := sqlstr.OpenGroup(cmd)
	defer group.Close()
*/
type Group struct {
	out    Writer
	child  *Group
	closed bool
}

var _ = Writer((*Group)(nil))

/*
Implemented by writers which support exclusive borrowing by a group. While
borrowed, such a writer accepts writes only via the `By` methods called by the
owning group. Writers outside this package don't implement it, and rely on the
caller's discipline.
*/
type borrower interface {
	borrow(*Group)
	release(*Group)
	pushCmdBy(*Group, string)
	pushValueBy(*Group, any) error
}

/*
Applies `SeparatorOptional`, writes "(", and borrows the writer until the
returned group is closed.
*/
func OpenGroup(out Writer) *Group {
	SeparatorOptional(out)
	out.PushCmd(`(`)

	group := &Group{out: out}
	impl, _ := out.(borrower)
	if impl != nil {
		impl.borrow(group)
	}
	return group
}

/*
Opens a group, calls the function, and closes the group when the function
returns or panics. Returns the function's error.
*/
func WithGroup(out Writer, fun func(*Group) error) error {
	group := OpenGroup(out)
	defer group.Close()
	return fun(group)
}

/*
Writes ")" and releases the enclosing writer. Closes the nested open group
first, if any. Idempotent: only the first call has an effect, so an explicit
`.Close` combined with a deferred one writes a single paren.
*/
func (self *Group) Close() {
	if self.closed {
		return
	}
	if self.child != nil {
		self.child.Close()
	}
	self.closed = true
	self.forwardCmd(`)`)

	impl, _ := self.out.(borrower)
	if impl != nil {
		impl.release(self)
	}
}

// True if `.Close` has been called.
func (self *Group) Closed() bool { return self.closed }

// Returns the text written so far, including text before the group.
func (self *Group) String() string { return self.out.String() }

// Implement `Writer`.
func (self *Group) PushCmd(val string) {
	self.reqWritable(nil)
	self.forwardCmd(val)
}

// Implement `Writer`.
func (self *Group) PushValue(val any) error {
	self.reqWritable(nil)
	return self.forwardValue(val)
}

// Implement `Writer`.
func (self *Group) PushExpr(val Expr) error { return pushExpr(self, val) }

func (self *Group) borrow(val *Group)  { self.child = val }
func (self *Group) release(val *Group) { releaseOwner(&self.child, val) }

func (self *Group) pushCmdBy(by *Group, val string) {
	self.reqWritable(by)
	self.forwardCmd(val)
}

func (self *Group) pushValueBy(by *Group, val any) error {
	self.reqWritable(by)
	return self.forwardValue(val)
}

// Only the nested group currently open, if any, may write to this group.
func (self *Group) reqWritable(by *Group) {
	if self.closed {
		panic(ErrGroupClosed.while(`writing to group`))
	}
	if self.child != by {
		panic(ErrWriterBorrowed.while(`writing to group`))
	}
}

func (self *Group) forwardCmd(val string) {
	impl, _ := self.out.(borrower)
	if impl != nil {
		impl.pushCmdBy(self, val)
		return
	}
	self.out.PushCmd(val)
}

func (self *Group) forwardValue(val any) error {
	impl, _ := self.out.(borrower)
	if impl != nil {
		return impl.pushValueBy(self, val)
	}
	return self.out.PushValue(val)
}

func releaseOwner(owner **Group, val *Group) {
	if *owner == val {
		*owner = nil
	}
}
