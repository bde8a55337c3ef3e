package main

import (
	"fmt"

	"petify-api/internal/config"
	"petify-api/internal/domain/users"

	"github.com/spf13/cobra"
)

// promote-admin resuelve el bootstrap del primer admin: solo un admin puede cambiar roles por HTTP.
func newPromoteAdminCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "promote-admin <email>",
		Short: "Grant the admin role to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configFile)
			if err != nil {
				return err
			}
			if cfg.Storage.Driver == config.DriverMemory {
				return fmt.Errorf("promote-admin needs a persistent STORAGE_DRIVER (mongo|postgres)")
			}

			stores, err := openStores(cmd.Context(), cfg, log, false)
			if err != nil {
				return err
			}
			defer closeStores(stores, log)

			u, err := users.NewService(stores.Users).PromoteByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			log.Info("user promoted to admin", map[string]any{"email": u.Email, "user_id": u.ID})
			return nil
		},
	}
}
