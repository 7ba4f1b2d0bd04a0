package sqlstr

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown             ErrCode = ""
	ErrCodeCommandBuffer       ErrCode = "CommandBuffer"
	ErrCodeArgument            ErrCode = "Argument"
	ErrCodeArgumentNotFound    ErrCode = "ArgumentNotFound"
	ErrCodeWriterBorrowed      ErrCode = "WriterBorrowed"
	ErrCodeGroupClosed         ErrCode = "GroupClosed"
	ErrCodePlaceholderMismatch ErrCode = "PlaceholderMismatch"
	ErrCodeInvalidInput        ErrCode = "InvalidInput"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, sqlstr.ErrArgument) {
		// Handle specific error.
	}

Note that errors returned by this package can't be compared via `==` because
they may include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.

The first three are the only errors returned by command building.
`ErrCommandBuffer` means the text could not grow, `ErrArgument` wraps an error
returned by an `ArgBuffer`, `ErrArgumentNotFound` means a combinator that
requires at least one item got none.
*/
var (
	ErrCommandBuffer       = Err{Code: ErrCodeCommandBuffer, Cause: errors.New(`command buffer capacity exceeded`)}
	ErrArgument            = Err{Code: ErrCodeArgument, Cause: errors.New(`argument rejected`)}
	ErrArgumentNotFound    = Err{Code: ErrCodeArgumentNotFound, Cause: errors.New(`argument not found`)}
	ErrWriterBorrowed      = Err{Code: ErrCodeWriterBorrowed, Cause: errors.New(`writer is borrowed by an open group`)}
	ErrGroupClosed         = Err{Code: ErrCodeGroupClosed, Cause: errors.New(`group is closed`)}
	ErrPlaceholderMismatch = Err{Code: ErrCodePlaceholderMismatch, Cause: errors.New(`placeholder mismatch`)}
	ErrInvalidInput        = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
)

// Type of errors returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self.Code == ErrCodeUnknown && self.While == `` && self.Cause == nil {
		return ``
	}
	msg := `[sqlstr]`
	if self.Code != ErrCodeUnknown {
		msg += ` ` + string(self.Code)
	} else {
		msg += ` error`
	}
	if self.While != `` {
		msg += ` while ` + self.While
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement `fmt.Formatter`. With `%+v`, the cause is printed with `%+v` too,
// which includes stack traces of causes created via "github.com/pkg/errors".
func (self Err) Format(out fmt.State, verb rune) {
	if verb != 'v' || !out.Flag('+') || self.Cause == nil {
		_, _ = io.WriteString(out, self.Error())
		return
	}

	msg := self
	msg.Cause = nil
	_, _ = io.WriteString(out, msg.Error())
	_, _ = fmt.Fprintf(out, `: %+v`, self.Cause)
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error { return self.Cause }

func (self Err) while(while string) Err {
	self.While = while
	return self
}

func (self Err) because(cause error) Err {
	self.Cause = cause
	return self
}

func (self Err) becausef(pat string, args ...any) Err {
	return self.because(errors.Errorf(pat, args...))
}
