package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitranim/sqlstr"
)

func runCheckCommand(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckDense(t *testing.T) {
	output, err := runCheckCommand(t, &RootOptions{Format: "text", Dialect: "postgres"},
		filepath.Join("testdata", "dense.sql"), "--args", "2")
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 placeholders\n", output)
}

func TestCheckRebind(t *testing.T) {
	output, err := runCheckCommand(t, &RootOptions{Format: "text", Dialect: "mysql"},
		filepath.Join("testdata", "dense.sql"), "--args", "2", "--rebind")
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 placeholders\nSELECT id FROM user WHERE id = ? AND name = '$2' AND role = ?\n", output)
}

func TestCheckSparse(t *testing.T) {
	_, err := runCheckCommand(t, &RootOptions{Format: "text", Dialect: "postgres"},
		filepath.Join("testdata", "sparse.sql"), "--args", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlstr.ErrPlaceholderMismatch)
}

func TestCheckCountMismatch(t *testing.T) {
	_, err := runCheckCommand(t, &RootOptions{Format: "text", Dialect: "postgres"},
		filepath.Join("testdata", "dense.sql"), "--args", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlstr.ErrPlaceholderMismatch)
}

func TestCheckStdinJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: "json", Dialect: "postgres"})
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader("SELECT $1, $2\n"))
	cmd.SetArgs([]string{"-", "--args", "2"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string  `json:"status"`
		Data   Checked `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, uint32(2), resp.Data.Placeholders)
}
