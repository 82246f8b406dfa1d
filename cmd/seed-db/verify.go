package main

import (
	"fmt"

	"github.com/sahatech/clinic-seed/internal/database"
	"github.com/sahatech/clinic-seed/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Print how many documents each seeded collection holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := database.InitDatabase(ctx, a.cfg, database.Firestore, a.log)
			if err != nil {
				a.log.Error("Failed to initialize database", zap.Error(err))
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== Firestore collections (%s) ===\n", a.cfg.Firebase.ProjectID)
			total := 0
			for _, collection := range models.SeededCollections {
				n, err := db.Store.Count(ctx, collection)
				if err != nil {
					a.log.Error("Failed to count collection", zap.String("collection", collection), zap.Error(err))
					return err
				}
				total += n
				fmt.Fprintf(out, "%-15s %d\n", collection, n)
			}
			fmt.Fprintf(out, "\nTotal documents: %d\n", total)

			if total == 0 {
				fmt.Fprintln(out, "Nothing seeded yet. Run seed-db to load the fixtures.")
			}
			return nil
		},
	}
}
