package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"clinic-cms/pkg/container"
	"clinic-cms/pkg/logger"
)

var (
	envFile      string
	appContainer *container.Container
)

var rootCmd = &cobra.Command{
	Use:   "cmsctl",
	Short: "Manage the clinic CMS document",
	Long: `cmsctl reads the same environment as the API server and operates on
the storage it selects: the JSON data file, or the remote store when
REMOTE_STORE_URL and REMOTE_STORE_KEY are set.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeContainer()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appContainer != nil {
			appContainer.Cleanup()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load before reading configuration")

	rootCmd.AddCommand(newSeedCmd(), newExportCmd(), newImportCmd())
}

func initializeContainer() error {
	if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	c, err := container.NewContainer()
	if err != nil {
		return err
	}
	appContainer = c
	return nil
}
