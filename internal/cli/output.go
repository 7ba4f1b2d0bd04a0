package cli

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Response is the JSON output format.
type Response struct {
	Status string `json:"status"`          // "ok" or "error"
	Data   any    `json:"data,omitempty"`  // success payload
	Error  string `json:"error,omitempty"` // error message
}

// Rendered is a rendered command with its arguments.
type Rendered struct {
	SQL  string `json:"sql"`
	Args []any  `json:"args"`
}

// Checked is the result of a placeholder check.
type Checked struct {
	Placeholders uint32 `json:"placeholders"`
	SQL          string `json:"sql,omitempty"`
}

// OutputFormatter writes command results in the configured format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Success outputs a successful result.
func (f *OutputFormatter) Success(data fmt.Stringer) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, data.String())
	return err
}

// Error outputs an error. In text mode, errors are left to the caller's log.
func (f *OutputFormatter) Error(err error) error {
	if f.Format == "json" {
		if encErr := json.NewEncoder(f.Writer).Encode(Response{Status: "error", Error: err.Error()}); encErr != nil {
			return encErr
		}
	}
	return err
}

func (r Rendered) String() string {
	var buf strings.Builder
	buf.WriteString(r.SQL)
	for ind, arg := range r.Args {
		fmt.Fprintf(&buf, "\n-- $%d = %v", ind+1, arg)
	}
	return buf.String()
}

func (c Checked) String() string {
	out := fmt.Sprintf("ok: %d placeholders", c.Placeholders)
	if c.SQL != "" {
		out += "\n" + c.SQL
	}
	return out
}

// displayArgs resolves driver.Valuer arguments to what the driver would send,
// which keeps the output independent of wrapper types.
func displayArgs(args []any) ([]any, error) {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		if valuer, ok := arg.(driver.Valuer); ok {
			val, err := valuer.Value()
			if err != nil {
				return nil, err
			}
			arg = val
		}
		if data, ok := arg.([]byte); ok {
			arg = string(data)
		}
		out = append(out, arg)
	}
	return out, nil
}
