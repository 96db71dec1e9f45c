package main

import (
	"fmt"
	"os"

	"cartable/internal/config"
	"cartable/internal/logger"

	"github.com/spf13/cobra"
)

var (
	configFile string
	cfg        *config.Config
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "cartable",
		Short:         "Digital binder: local documents, notes, AI quizzes and career coaching",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig(configFile)
			if err != nil {
				return err
			}
			if debugMode {
				loaded.Logger.Level = "debug"
			}
			cfg = loaded
			return logger.Initialize(cfg.Logger)
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(
		newDocsCommand(),
		newFoldersCommand(),
		newNotesCommand(),
		newQuizCommand(),
		newCVCommand(),
		newInterviewCommand(),
	)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
