package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oseayemenre/readinglist/internal/config"
	"github.com/oseayemenre/readinglist/internal/service"
	"github.com/oseayemenre/readinglist/internal/store"
)

// AdminCommand manages ADMIN accounts. Registration over http only ever
// creates USER accounts.
func AdminCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "manage admin accounts",
	}

	var username, name, password string

	create := &cobra.Command{
		Use:   "create",
		Short: "create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()

			if err != nil {
				return err
			}

			if cfg.Database_url == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}

			db, err := store.NewPostgresStore(ctx, cfg.Database_url)

			if err != nil {
				return err
			}
			defer db.Close()

			user, err := service.NewAuthService(db, cfg.Jwt_secret, cfg.Jwt_expires_in).CreateAdmin(ctx, username, name, password)

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created with id %d\n", user.Username, user.Id)
			return nil
		},
	}

	create.Flags().StringVarP(&username, "username", "u", "", "admin username")
	create.Flags().StringVarP(&name, "name", "n", "", "admin display name")
	create.Flags().StringVarP(&password, "password", "p", "", "admin password")
	create.MarkFlagRequired("username")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("password")

	cmd.AddCommand(create)

	return cmd
}
