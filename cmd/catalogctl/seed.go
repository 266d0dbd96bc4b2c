package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/hongminglow/catalog-be/internal/seed"
)

func (a *app) seedCmd() *cobra.Command {
	var (
		perCategory int
		randSeed    uint64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the reference categories and generated products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if perCategory < 1 {
				return a.fail(errors.New("--per-category must be at least 1"), "seed")
			}
			if randSeed == 0 {
				randSeed = uint64(time.Now().UnixNano())
			}

			store, err := a.openStore(cmd.Context(), true)
			if err != nil {
				return a.fail(err, "seed")
			}
			defer store.Close()

			report, err := seed.Run(cmd.Context(), store, seed.NewGenerator(randSeed), perCategory, a.log)
			if err != nil {
				return a.fail(err, "seed")
			}
			a.log.Info().
				Int("categories", report.Categories).
				Int64("products", report.Products).
				Int("skipped", report.Skipped).
				Msg("seeding complete")
			return nil
		},
	}
	cmd.Flags().IntVar(&perCategory, "per-category", seed.DefaultPerCategory, "products to generate for each empty category")
	cmd.Flags().Uint64Var(&randSeed, "rand-seed", 0, "seed for generated prices and quantities (0 picks one)")
	return cmd
}
