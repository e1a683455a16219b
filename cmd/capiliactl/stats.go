package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"capilia/internal/client"
	"capilia/internal/dashboard"
	"capilia/internal/model"
)

func addFilterFlags(cmd *cobra.Command, f *client.StatsFilters) {
	cmd.Flags().StringVar(&f.Country, "country", "", "Country filter")
	cmd.Flags().StringVar(&f.State, "state", "", "State filter")
	cmd.Flags().StringVar(&f.City, "city", "", "City filter")
	cmd.Flags().StringArrayVar(&f.Chemistries, "chemistry", nil, "Process code filter, repeatable")
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			api, err := c.client()
			if err != nil {
				return err
			}
			h, err := api.Health(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, h.Status)
			return nil
		},
	}
}

func (c *cli) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Query aggregate statistics from the API",
	}
	cmd.AddCommand(c.statsLocationsCmd(), c.statsChemistriesCmd(), c.statsProductsCmd())
	return cmd
}

// withClient runs fn with a client and a timeout-bound context.
func (c *cli) withClient(cmd *cobra.Command, fn func(ctx context.Context, api *client.Client) (any, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()

	api, err := c.client()
	if err != nil {
		return err
	}
	out, err := fn(ctx, api)
	if err != nil {
		return err
	}
	return c.printJSON(out)
}

func (c *cli) statsLocationsCmd() *cobra.Command {
	var (
		f     client.StatsFilters
		level string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Company counts by point, country, state or city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, api *client.Client) (any, error) {
				return api.LocationStats(ctx, model.LocationLevel(level), limit, f)
			})
		},
	}
	cmd.Flags().StringVar(&level, "level", string(model.LevelCountry), "point, country, state or city")
	cmd.Flags().IntVar(&limit, "limit", 200, "Maximum rows")
	addFilterFlags(cmd, &f)
	return cmd
}

func (c *cli) statsChemistriesCmd() *cobra.Command {
	var (
		f     client.StatsFilters
		limit int
	)
	cmd := &cobra.Command{
		Use:   "chemistries",
		Short: "Company counts per chemistry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, api *client.Client) (any, error) {
				return api.ChemistryStats(ctx, limit, f)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum rows")
	addFilterFlags(cmd, &f)
	return cmd
}

func (c *cli) statsProductsCmd() *cobra.Command {
	var (
		f     client.StatsFilters
		by    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Product counts per company or per product type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, api *client.Client) (any, error) {
				switch model.ProductsBy(by) {
				case model.ProductsByCompany:
					return api.ProductStatsByCompany(ctx, limit, f)
				case model.ProductsByGlobal:
					return api.ProductStatsGlobal(ctx, limit, f)
				default:
					return nil, fmt.Errorf("--by must be company or global, got %q", by)
				}
			})
		},
	}
	cmd.Flags().StringVar(&by, "by", string(model.ProductsByCompany), "company or global")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum rows")
	addFilterFlags(cmd, &f)
	return cmd
}

func (c *cli) dashboardCmd() *cobra.Command {
	var f client.StatsFilters
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Load every dashboard section and print it with the summary cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, api *client.Client) (any, error) {
				return dashboard.NewLoader(api, c.logger(cmd)).Load(ctx, f), nil
			})
		},
	}
	addFilterFlags(cmd, &f)
	return cmd
}
