package cli

import (
	"github.com/spf13/cobra"

	"github.com/mitranim/sqlstr"
	"github.com/mitranim/sqlstr/internal/logging"
	"github.com/mitranim/sqlstr/internal/stmt"
	"github.com/mitranim/sqlstr/sqldb"
)

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <statement.yaml>",
		Short: "Render a statement described in YAML",
		Long: `Render a SELECT, INSERT, UPDATE or DELETE statement described in YAML
into SQL text with ordinal placeholders, followed by the bound arguments.
The placeholders are converted to the style of the dialect.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			out, err := runRender(rootOpts, args[0])
			if err != nil {
				return formatter.Error(err)
			}
			return formatter.Success(out)
		},
	}
}

func runRender(opts *RootOptions, path string) (Rendered, error) {
	statement, err := stmt.Load(path)
	if err != nil {
		return Rendered{}, err
	}
	logging.Debugf("loaded %s statement on %q from %s", statement.Kind, statement.Table, path)

	dialect, err := parseDialect(opts.Dialect)
	if err != nil {
		return Rendered{}, err
	}

	cmd := sqldb.NewCommand(dialect)
	cmd.MaxLen = opts.MaxLen

	var renderErr error
	err = sqlstr.Catch(func() {
		renderErr = statement.Render(cmd)
	})
	if err == nil {
		err = renderErr
	}
	if err != nil {
		return Rendered{}, err
	}
	if err := cmd.Err(); err != nil {
		return Rendered{}, err
	}

	if err := sqlstr.CheckPlaceholders(cmd.String(), cmd.Args.Count()); err != nil {
		return Rendered{}, err
	}

	text, args, err := sqldb.Build(cmd)
	if err != nil {
		return Rendered{}, err
	}
	logging.Debugf("rendered %d bytes with %d args", len(text), len(args))

	display, err := displayArgs(args)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{SQL: text, Args: display}, nil
}
