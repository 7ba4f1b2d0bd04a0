// Package cli implements the sqlstr command line tool.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mitranim/sqlstr/internal/logging"
	"github.com/mitranim/sqlstr/sqldb"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Color   bool
	Format  string // "json" | "text"
	Dialect string // "postgres" | "sqlite" | "mysql"
	MaxLen  int
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sqlstr",
		Short: "Render and check SQL commands with ordinal placeholders",
		Long: `Render SQL statements described in YAML into command text with bound
arguments, and check placeholder numbering of SQL text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := parseDialect(opts.Dialect); err != nil {
				return err
			}
			logging.Setup(cmd.ErrOrStderr(), opts.Verbose, opts.Color)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&opts.Color, "color", true, "colored log output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Dialect, "dialect", "postgres", "database dialect (postgres|sqlite|mysql)")
	cmd.PersistentFlags().IntVar(&opts.MaxLen, "max-len", 0, "maximum command length in bytes, 0 for unlimited")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

func parseDialect(src string) (sqldb.Dialect, error) {
	switch src {
	case "postgres":
		return sqldb.Postgres, nil
	case "sqlite":
		return sqldb.SQLite, nil
	case "mysql":
		return sqldb.MySQL, nil
	default:
		return 0, fmt.Errorf("invalid dialect %q: must be one of postgres, sqlite, mysql", src)
	}
}
