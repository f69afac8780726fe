package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oseayemenre/readinglist/internal/config"
	"github.com/oseayemenre/readinglist/internal/store"
)

func MigrateCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status", "version"},
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

			if args[0] == "version" {
				version, err := store.Version(ctx, db.DB)

				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
				return nil
			}

			return store.Migrate(ctx, db.DB, args[0])
		},
	}

	return cmd
}
