package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"capilia/internal/config"
	"capilia/internal/database"
	"capilia/internal/database/migration"
	"capilia/internal/database/seed"
	"capilia/internal/repository/sqldb"
)

func (c *cli) migrateCmd() *cobra.Command {
	var drop, withSeed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema, optionally dropping it first and seeding demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, dialect, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			log := c.logger(cmd)
			if drop {
				if err := migration.DropAll(ctx, db, log); err != nil {
					return err
				}
			}
			host := cfg.Database.Host
			if dialect == database.SQLite {
				host = cfg.Database.Path
			}
			if err := migration.EnsureMigrated(ctx, db, dialect, log, host); err != nil {
				return err
			}
			if !withSeed {
				return nil
			}

			needed, err := seed.Needed(ctx, db)
			if err != nil {
				return err
			}
			if !needed {
				fmt.Fprintln(c.out, "Database already contains companies; seed skipped.")
				return nil
			}
			if err := seed.Run(ctx, db, dialect); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Seeded demo data.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&drop, "drop", false, "Drop every table before migrating")
	cmd.Flags().BoolVar(&withSeed, "seed", false, "Load demo data when the companies table is empty")
	return cmd
}

func (c *cli) geocodeMissingCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "geocode-missing",
		Short: "Report companies without coordinates (no geocoding is performed)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, dialect, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := sqldb.NewStatsSQL(db, dialect).CompaniesMissingCoordinates(ctx, limit)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Found %d companies with missing lat/lon.\n", res.Total)
			for _, co := range res.Items {
				fmt.Fprintf(c.out, "- id=%d name=%q location=%q city=%q country=%q\n",
					co.ID, co.Name, co.Location, co.City, co.Country)
			}
			fmt.Fprintln(c.out, "No geocoding performed.")
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum companies to list")
	return cmd
}
