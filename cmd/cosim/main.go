package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/cosim/internal/config"
	"github.com/san-kum/cosim/internal/logging"
)

var (
	errorColor  = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
	headerColor = color.New(color.Bold)
)

// app carries the settings shared by every command. Each root command gets
// its own viper instance.
type app struct {
	v *viper.Viper
}

func main() {
	// .env is optional.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "cosim",
		Short:         "drive simulation components through a uniform contract",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("settings", "", "settings file (default $HOME/.cosim/config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.Bool("no-color", false, "disable colored output")

	_ = a.v.BindPFlag("settings", flags.Lookup("settings"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("no_color", flags.Lookup("no-color"))

	rootCmd.AddCommand(
		a.newRunCmd(),
		a.newListCmd(),
		a.newDescribeCmd(),
		a.newPresetsCmd(),
		a.newCompareCmd(),
	)
	return rootCmd
}

// initConfig reads the optional settings file and COSIM_* environment
// variables. Flags take precedence over both.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("cosim")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if file := a.v.GetString("settings"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
	} else {
		a.v.AddConfigPath("$HOME/.cosim")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
		_ = a.v.ReadInConfig()
	}

	if a.v.GetBool("no_color") {
		color.NoColor = true
	}
	return nil
}

// logger writes to the command's stderr. Flags, env and settings override
// the scenario's log section.
func (a *app) logger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.New(
		a.logSetting("log.level", cfg.Log.Level),
		a.logSetting("log.format", cfg.Log.Format),
		cmd.ErrOrStderr(),
	)
}

// logSetting returns the flag, env or settings value for key, or fallback
// when none is set.
func (a *app) logSetting(key, fallback string) string {
	if s := a.v.GetString(key); s != "" {
		return s
	}
	return fallback
}
