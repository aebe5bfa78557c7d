package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/database"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/export"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLoadCmd(v *viper.Viper) *cobra.Command {
	var (
		dialect string
		url     string
		file    string
	)

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Apply a generated SQL script to a live database",
		Long: `
Execute a generated sample-database.sql script against a database.
Supported dialects: SQLite, MySQL, Postgres

The connection string comes from --url or from the environment variable
named by database.url_env (DATABASE_URL by default).

Examples:
  sampleset load --dialect SQLite --url ./sample.db
  sampleset load --dialect Postgres
  sampleset load --dialect MySQL --file ./Generated/MySQL/sample-database.sql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(v)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			name, ok := config.CanonicalDialect(dialect)
			if !ok {
				return apperrors.New(apperrors.CodeInvalidArgument, "unsupported SQL dialect: %s", dialect)
			}
			adapter, err := database.NewAdapter(name)
			if err != nil {
				return err
			}

			if url == "" {
				if url, err = cfg.GetDatabaseURL(); err != nil {
					return err
				}
			}
			if file == "" {
				file = filepath.Join(cfg.OutputDir(), name, export.ScriptName)
			}

			script, err := os.ReadFile(file)
			if err != nil {
				return apperrors.Wrap(apperrors.CodeResourceUnavailable, "failed to read script", err)
			}

			var tables []string
			for _, d := range schema.Entities() {
				tables = append(tables, d.Name())
			}

			color.Cyan("🚚 Loading %s into %s database...", file, name)
			res, err := database.Load(cmd.Context(), adapter, url, string(script), tables...)
			if err != nil {
				return err
			}

			color.Green("✅ Executed %d statements", res.Statements)
			for _, table := range tables {
				fmt.Printf("  %-10s %d rows\n", table, res.Rows[table])
			}
			return nil
		},
	}

	loadCmd.Flags().StringVarP(&dialect, "dialect", "d", config.DialectSQLite, "SQL dialect of the script (SQLite, MySQL, Postgres)")
	loadCmd.Flags().StringVar(&url, "url", "", "database connection string (defaults to the configured env var)")
	loadCmd.Flags().StringVarP(&file, "file", "f", "", "script to apply (defaults to <target>/<dialect>/"+export.ScriptName+")")
	return loadCmd
}
