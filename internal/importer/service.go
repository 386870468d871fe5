package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/cardvault-importer/internal/inventory"
	"github.com/angelmondragon/cardvault-importer/internal/scryfall"
	"github.com/angelmondragon/cardvault-importer/pkg/config"
	"github.com/angelmondragon/cardvault-importer/pkg/logger"
)

// Enricher is the remote lookup surface; the scryfall client satisfies it.
type Enricher interface {
	Lookup(ctx context.Context, ids []string) ([]scryfall.CardData, error)
}

type ServiceParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	Store    Store
	Enricher Enricher

	// Sleep overrides the inter-batch pause; tests swap it out. Nil uses a
	// context-aware real sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Service drives one import run: normalize the whole file up front, then per
// batch enrich, merge, persist and accumulate, strictly sequentially with an
// unconditional pause between batches. The first error anywhere aborts the
// run before the summary is ever written.
type Service struct {
	cfg      *config.Config
	logg     *logger.Logger
	store    Store
	enricher Enricher
	sleep    func(ctx context.Context, d time.Duration) error
	totals   RunTotals
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Config == nil {
		return nil, errors.New("config is required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if params.Store == nil {
		return nil, errors.New("store is required")
	}
	if params.Enricher == nil {
		return nil, errors.New("enricher is required")
	}

	sleep := params.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	return &Service{
		cfg:      params.Config,
		logg:     params.Logger,
		store:    params.Store,
		enricher: params.Enricher,
		sleep:    sleep,
	}, nil
}

func (s *Service) Run(ctx context.Context) error {
	records, err := inventory.ReadFile(s.cfg.Importer.CSVPath)
	if err != nil {
		return fmt.Errorf("reading inventory: %w", err)
	}

	ctx = s.logg.WithField(ctx, "records", len(records))
	s.logg.Info(ctx, "inventory normalized")

	// The new run takes full authority over the stored collection before the
	// first batch lands.
	if err := s.store.DeleteAllCards(ctx); err != nil {
		return err
	}
	if err := s.store.DeleteAllSummaries(ctx); err != nil {
		return err
	}

	batches := chunk(records, s.cfg.Importer.BatchSize)
	for i, batch := range batches {
		batchCtx := s.logg.WithBatch(ctx, i+1, len(batch))

		if err := s.processBatch(batchCtx, batch); err != nil {
			return fmt.Errorf("batch %d/%d: %w", i+1, len(batches), err)
		}

		// Unconditional pacing between lookup calls, trailing batch included;
		// the remote rate limit is enforced by nothing else.
		if err := s.sleep(ctx, s.cfg.Importer.BatchPause); err != nil {
			return err
		}
	}

	summary := s.totals.Summary(time.Now().UTC())
	if err := s.store.InsertSummary(ctx, summary); err != nil {
		return err
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"total_cards":       summary.TotalCards,
		"total_value_cents": summary.TotalValueCents,
	})
	s.logg.Info(ctx, "import completed")
	return nil
}

func (s *Service) processBatch(ctx context.Context, batch []inventory.Record) error {
	ids := make([]string, 0, len(batch))
	for _, record := range batch {
		ids = append(ids, record.ScryfallID)
	}

	metadata, err := s.enricher.Lookup(ctx, ids)
	if err != nil {
		return err
	}

	cards, err := mergeBatch(batch, metadata)
	if err != nil {
		return err
	}

	if err := s.store.InsertCards(ctx, cards); err != nil {
		return err
	}

	s.totals.AddBatch(cards)
	s.logg.Info(ctx, "batch persisted")
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
