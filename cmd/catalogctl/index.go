package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hongminglow/catalog-be/internal/indexer"
	"github.com/hongminglow/catalog-be/internal/search/elastic"
)

// elasticIndex adapts the Elasticsearch client to indexer.Index.
type elasticIndex struct {
	*elastic.Client
}

func (e elasticIndex) NewBatch(workers int, onFailed func(id, reason string)) (indexer.Batch, error) {
	bi, err := e.NewBulkIndexer(workers, onFailed)
	if err != nil {
		return nil, err
	}
	return bi, nil
}

func (a *app) indexCmd() *cobra.Command {
	var opts indexer.Options
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Create the search index and bulk-index every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.SearchEnabled() {
				return a.fail(errors.New("ES_NODE is not set"), "index")
			}
			client, err := elastic.New(a.cfg.SearchNode, a.cfg.SearchIndex)
			if err != nil {
				return a.fail(err, "index")
			}
			if err := client.Ping(cmd.Context()); err != nil {
				return a.fail(err, "index")
			}

			store, err := a.openStore(cmd.Context(), false)
			if err != nil {
				return a.fail(err, "index")
			}
			defer store.Close()

			report, err := indexer.Sync(cmd.Context(), store, elasticIndex{client}, opts, a.log)
			ev := a.log.Info()
			if err != nil {
				ev = a.log.Error().Err(err)
			}
			ev.Str("index", client.Index()).
				Bool("created", report.Created).
				Int("read", report.Read).
				Uint64("indexed", report.Indexed).
				Uint64("failed", report.Failed).
				Msg("index sync finished")
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.Recreate, "recreate", false, "drop and recreate the index first")
	cmd.Flags().IntVar(&opts.Workers, "workers", 2, "concurrent bulk request workers")
	return cmd
}
