package main

import (
	"github.com/spf13/cobra"

	"file-mover/internal/app"
)

type rootFlags struct {
	config   string
	registry string
	journal  string
	logLevel string
	source   string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "file-mover",
		Short: "Sort files from a folder into stored destinations, one file at a time",
		Long: "file-mover opens a window listing the files of a source folder and asks,\n" +
			"for each file in turn, which stored destination it should be moved to.",
		Version:       app.AppVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.registry, "registry", "", "Destination registry file (overrides registry_path)")
	rootCmd.PersistentFlags().StringVar(&flags.journal, "journal", "", "Journal database path, or \"off\" (overrides journal_path)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVarP(&flags.source, "source", "s", "", "Source folder to sort (skips the folder picker)")

	rootCmd.AddCommand(newDestinationsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runGUI(ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	log, err := ctx.logger(cfg, false)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(app.Options{
		Config:  cfg,
		Logger:  log,
		Session: ctx.session,
		Source:  ctx.flags.source,
	})
	if err != nil {
		return err
	}
	return application.Run()
}
