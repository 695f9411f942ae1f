package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/5w1tchy/bookshelf/internal/store/schema"
)

func seedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the tables and insert sample data into an empty store, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, dialect, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			res := schema.New(db, dialect, a.log).Run(cmd.Context())
			if !res.TablesReady {
				return errors.New("tables could not be created; see log")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded=%t failed_inserts=%d\n", res.Seeded, res.FailedInserts)
			return nil
		},
	}
}
