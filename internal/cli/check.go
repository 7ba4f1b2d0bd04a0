package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mitranim/sqlstr"
	"github.com/mitranim/sqlstr/internal/logging"
)

// CheckOptions holds flags of the check command.
type CheckOptions struct {
	Args   uint32
	Rebind bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <file.sql|->",
		Short: "Check ordinal placeholders of SQL text",
		Long: `Check that the ordinal placeholders of SQL text are exactly $1 through $N
in ascending order, where N is the argument count. Quoted strings and
comments are ignored. Use "-" to read from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			out, err := runCheck(rootOpts, opts, args[0], cmd.InOrStdin())
			if err != nil {
				return formatter.Error(err)
			}
			return formatter.Success(out)
		},
	}

	cmd.Flags().Uint32Var(&opts.Args, "args", 0, "expected argument count")
	cmd.Flags().BoolVar(&opts.Rebind, "rebind", false, "print the text with placeholders in the style of the dialect")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *CheckOptions, path string, stdin io.Reader) (Checked, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Checked{}, err
	}

	text := strings.TrimRight(string(data), "\r\n")
	logging.Debugf("checking %d bytes against %d args", len(text), opts.Args)

	if err := sqlstr.CheckPlaceholders(text, opts.Args); err != nil {
		return Checked{}, err
	}

	out := Checked{Placeholders: opts.Args}
	if opts.Rebind {
		dialect, err := parseDialect(rootOpts.Dialect)
		if err != nil {
			return Checked{}, err
		}
		out.SQL, err = sqlstr.Rebind(text, dialect.Style())
		if err != nil {
			return Checked{}, err
		}
	}
	return out, nil
}
