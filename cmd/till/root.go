// Root command for the till CLI.
package main

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/logger"
	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Exit codes: 1 for user errors (bad input, unknown ids), 2 for system
// errors (unreadable files, malformed stores).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagStore     string
	flagFormat    string
	flagJSON      bool
)

// cfg is the effective configuration, assembled by PersistentPreRunE from
// config.yaml with flag overrides, so all subcommands can use it.
var cfg types.Config

// log is the process logger, configured from the log_level config key.
var log *zap.SugaredLogger = logger.Nop()

var rootCmd = &cobra.Command{
	Use:           "till",
	Short:         "Till is a catalog and point-of-sale tool for a small shop",
	Version:       stockroom.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cfg, err = buildConfig(v)
		if err != nil {
			return err
		}

		log, err = logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "catalog store file (default: $(CWD)/stockroom.json)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "store encoding, json or xml (default: json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(sellCmd)
	rootCmd.AddCommand(staffCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(salesCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
