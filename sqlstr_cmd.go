package sqlstr

// Prefix of ordinal placeholders such as "$1".
const ordinalParamPrefix = '$'

// Creates an empty `Command` with the given argument buffer.
func NewCommand[A ArgBuffer](args A) *Command[A] {
	return &Command[A]{Args: args}
}

/*
Prealloc tool. Makes a `Command` with the specified capacity of the text buffer.
*/
func MakeCommand[A ArgBuffer](textCap int, args A) *Command[A] {
	return &Command[A]{Text: make([]byte, 0, textCap), Args: args}
}

/*
Resumes building from previously written text. The argument buffer must already
hold the arguments referenced by the text, since new placeholders continue from
`args.Count()`.
*/
func ResumeCommand[A ArgBuffer](text string, args A) *Command[A] {
	return &Command[A]{Text: append([]byte(nil), text...), Args: args}
}

/*
SQL command under construction: text with ordinal placeholders and the argument
buffer holding the corresponding values. Implements `Writer`.

The text is append-only. If `MaxLen` is positive, writes that would grow the
text beyond it are not performed; the command instead records
`ErrCommandBuffer`, ignores all further writes, and reports the error via
`.Err` and every subsequent `.PushValue`/`.PushExpr`. The text remains as it was
after the last successful write, so the caller may inspect or reuse it.
*/
type Command[A ArgBuffer] struct {
	Text   []byte
	Args   A
	MaxLen int

	err   error
	owner *Group
}

var _ = Writer((*Command[*Args])(nil))

/*
Returns the text as a string without copying. The text is append-only, so the
returned string remains valid after further writes.
*/
func (self *Command[_]) String() string { return bytesToMutableString(self.Text) }

// Returns the capacity error, if any.
func (self *Command[_]) Err() error { return self.err }

// Returns the finished text and arguments, or the capacity error.
func (self *Command[A]) Reify() (string, A, error) {
	return self.String(), self.Args, self.err
}

/*
Increases the capacity (not length) of the text buffer by the specified amount.
If there's already enough capacity, avoids allocation. Never grows beyond
`MaxLen`.
*/
func (self *Command[_]) Grow(size int) {
	if self.MaxLen > 0 && len(self.Text)+size > self.MaxLen {
		size = self.MaxLen - len(self.Text)
	}
	if size > 0 {
		self.Text = growBytes(self.Text, size)
	}
}

// Appends raw text. No separator is added.
func (self *Command[_]) PushCmd(val string) {
	self.reqOwner(nil)
	self.pushCmd(val)
}

/*
Pushes the value into the argument buffer, then appends the placeholder "$N"
where N is the argument count after the push. If the buffer rejects the value,
nothing is appended and the error is returned wrapped in `ErrArgument`. If the
placeholder would exceed `MaxLen`, the value is not pushed.
*/
func (self *Command[_]) PushValue(val any) error {
	self.reqOwner(nil)
	return self.pushValue(val)
}

// Appends a literal fragment via `.PushCmd` or a bound value via `.PushValue`.
func (self *Command[_]) PushExpr(val Expr) error { return pushExpr(self, val) }

func (self *Command[_]) pushCmd(val string) {
	if val == `` || !self.reserve(len(val)) {
		return
	}
	self.Text = append(self.Text, val...)
}

func (self *Command[_]) pushValue(val any) error {
	if self.err != nil {
		return self.err
	}

	if !self.reserve(1 + uint32Len(self.Args.Count()+1)) {
		return self.err
	}

	err := self.Args.Push(val)
	if err != nil {
		return ErrArgument.while(`pushing value`).because(err)
	}

	self.Text = appendOrdinal(self.Text, self.Args.Count())
	return nil
}

func (self *Command[_]) reserve(size int) bool {
	if self.err != nil {
		return false
	}
	if self.MaxLen > 0 && len(self.Text)+size > self.MaxLen {
		self.err = ErrCommandBuffer.while(`growing command buffer`).becausef(
			`need %v bytes, have %v of %v`, size, self.MaxLen-len(self.Text), self.MaxLen,
		)
		return false
	}
	return true
}

// Only the group currently holding the command may write to it.
func (self *Command[_]) reqOwner(val *Group) {
	if self.owner != val {
		panic(ErrWriterBorrowed.while(`writing to command`))
	}
}

func (self *Command[_]) borrow(val *Group)  { self.owner = val }
func (self *Command[_]) release(val *Group) { releaseOwner(&self.owner, val) }

func (self *Command[_]) pushCmdBy(by *Group, val string) {
	self.reqOwner(by)
	self.pushCmd(val)
}

func (self *Command[_]) pushValueBy(by *Group, val any) error {
	self.reqOwner(by)
	return self.pushValue(val)
}

func appendOrdinal(text []byte, ord uint32) []byte {
	return appendUint32(append(text, ordinalParamPrefix), ord)
}
