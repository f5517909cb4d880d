package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/gearbox-works/scout-cli/internal/analysis"
	"github.com/gearbox-works/scout-cli/internal/model"
	"github.com/gearbox-works/scout-cli/internal/scoring"
	"github.com/gearbox-works/scout-cli/internal/store"
)

// initStore opens the configured SQLite store and applies migrations.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "init store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

func newAggregator() *analysis.Aggregator {
	return analysis.NewAggregator(scoring.NewCache(cfg.Analysis.ScoreCacheSize))
}

func newRecommender() *analysis.Recommender {
	return analysis.NewRecommender(cfg.Analysis.MinAllianceTeams)
}

// loadSnapshot reads the full record collections; every aggregation
// recomputes from such a snapshot.
func loadSnapshot(ctx context.Context, st store.Store) ([]model.MatchRecord, []model.PitRecord, error) {
	matches, err := st.ListMatches(ctx, store.MatchFilter{})
	if err != nil {
		return nil, nil, err
	}
	pits, err := st.ListPits(ctx, store.PitFilter{})
	if err != nil {
		return nil, nil, err
	}
	return matches, pits, nil
}
