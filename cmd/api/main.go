package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// @title Petify API
// @version 1.0
// @description Adopción de mascotas y campañas de donación.
// @BasePath /
func main() {
	// .env es opcional; en producción las variables vienen del entorno.
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "petify",
		Short:         "Petify API: adopciones y campañas de donación",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml); env vars take precedence")

	root.AddCommand(
		newServeCommand(&configFile),
		newMigrateCommand(&configFile),
		newPromoteAdminCommand(&configFile),
	)
	return root
}
