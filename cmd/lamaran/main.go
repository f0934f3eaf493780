package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lamaran-inc/lamaran/internal/interfaces/cli/migrate"
	"github.com/lamaran-inc/lamaran/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lamaran",
		Short: "Lamaran - wedding invitation catalog backend",
		Long:  `Lamaran serves the wedding invitation template catalog, landing page content and its admin API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
