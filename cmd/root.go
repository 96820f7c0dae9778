// Package cmd command line interface of shamir-audit
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	gutils "github.com/Laisky/shamir-audit"
	"github.com/Laisky/shamir-audit/config"
	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
	"github.com/Laisky/shamir-audit/log"
)

// Exit codes
const (
	ExitOK                  = 0
	ExitFailed              = 1
	ExitNoSharesOrThreshold = 2
	ExitNoConsistentSubset  = 3
)

var rootCmd = &cobra.Command{
	Use:   "shamir-audit",
	Short: "reconstruct a shamir secret and find corrupted shares",
	Long: gutils.Dedent(`
		Reconstruct the secret of a Shamir secret sharing from a share file,
		and report the shares that are likely corrupted.

		Runs the audit command when no sub command is given:

			shamir-audit --input input.json
	`),
	Args:          NoExtraArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAuditCmd(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// exits the process with ExitCode of the command error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		log.Shared.Error("run command", zap.Error(err))
	}

	_ = log.Shared.Sync()
	os.Exit(ExitCode(err))
}

// ExitCode process exit code of the error returned by a command
func ExitCode(err error) int {
	switch shamir.StatusOf(err) {
	case shamir.StatusSuccess:
		return ExitOK
	case shamir.StatusNoSharesOrInvalidThreshold:
		return ExitNoSharesOrThreshold
	case shamir.StatusNoConsistentSubset:
		return ExitNoConsistentSubset
	default:
		return ExitFailed
	}
}

func init() {
	rootCmd.PersistentFlags().Bool(config.KeyDebug, false, "debug")
	rootCmd.PersistentFlags().StringP(config.KeyConfig, "c", "",
		"config file, yaml, json or toml, may include another config file")
	addAuditFlags(rootCmd)
}

// setupSettings bind flags, load the config file and set log level
func setupSettings(cmd *cobra.Command) error {
	config.Shared.SetDefaults()
	if err := config.Shared.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	if fpath := config.Shared.GetString(config.KeyConfig); fpath != "" {
		if err := config.Shared.LoadFromFile(fpath, config.WithSettingsEnableInclude()); err != nil {
			return errors.Wrap(err, "load config")
		}
	}

	level := log.LevelInfo
	if config.Shared.GetBool(config.KeyDebug) {
		level = log.LevelDebug
	}
	if err := log.Shared.ChangeLevel(level); err != nil {
		return errors.Wrap(err, "change logger level")
	}

	return nil
}

// NoExtraArgs make sure every args has been processed
//
// do not allow any un processed args
func NoExtraArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown args `%v`", args)
	}

	return nil
}
