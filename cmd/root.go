package cmd

import (
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/export"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seeder"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Version = "1.0.0"

// NewRootCmd builds the CLI with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sampleset",
		Short: "Generate a consistent sample database in many formats",
		Long: `
sampleset generates a relational sample dataset (products, addresses,
customers, orders, order lines, roles, users and themes) whose foreign keys
and derived fields always agree, and writes it as:

- JSON, YAML, TOML, CSV and XML (one file per entity)
- SQL scripts for SQLite, MySQL, MSSQL and Postgres
- optionally a ready-made SQLite database file

Examples:
  sampleset
  sampleset --release 2024-06
  sampleset --seed 42 --config ./sampleset.config.json`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sampleset.config.json)")

	flags := rootCmd.Flags()
	flags.SetNormalizeFunc(releaseAlias)
	flags.StringP("release", "r", "", "write output under <target>/<release> (alias --ltd)")
	flags.Int64("seed", 0, "random seed for a reproducible run (0 picks one)")
	flags.String("target", "", "output root directory")

	v.BindPFlag("release", flags.Lookup("release"))
	v.BindPFlag("random_seed", flags.Lookup("seed"))
	v.BindPFlag("writers.target", flags.Lookup("target"))

	rootCmd.AddCommand(newLoadCmd(v))
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// releaseAlias keeps the historical --ltd spelling working.
func releaseAlias(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "ltd" {
		name = "release"
	}
	return pflag.NormalizedName(name)
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("json")
		v.SetConfigName("sampleset.config")
	}

	v.SetEnvPrefix("SAMPLESET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	writers, err := export.New(cfg)
	if err != nil {
		return err
	}
	enabled := make([]seeder.Writer, len(writers))
	for i, w := range writers {
		enabled[i] = w
	}

	s, err := seeder.NewSeeder(cfg, seeder.WithWriters(enabled...))
	if err != nil {
		return err
	}
	if seed, ok := s.Seed(); ok {
		color.Cyan("🎲 Random seed: %d (pass --seed %d to repeat this run)", seed, seed)
	}
	if used := v.ConfigFileUsed(); used != "" {
		color.Cyan("⚙️  Using config file: %s", used)
	}

	_, err = s.Run(cmd.Context())
	return err
}
