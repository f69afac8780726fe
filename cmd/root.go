package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Run() error {
	ctx := context.Background()

	cmd := &cobra.Command{
		Use:   "readinglist",
		Short: "track reading intervals and recommend the most read books",
	}

	cmd.AddCommand(HTTPCommand(ctx))
	cmd.AddCommand(MigrateCommand(ctx))
	cmd.AddCommand(AdminCommand(ctx))

	if err := cmd.Execute(); err != nil {
		return err
	}

	return nil
}
