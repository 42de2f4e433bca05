package enumeration

import (
	"context"
	"log/slog"
	"sync"

	"github.com/limaJavier/lilmiss/pkg/model"
	"golang.org/x/sync/errgroup"
)

// Configurations is the number of distinct tiles over {#, .}
const Configurations = 1 << model.TileSize

// Enumerator evaluates every packed tile configuration and tallies the verdicts
type Enumerator interface {
	Enumerate(ctx context.Context) (Tally, error)
}

type parallelEnumerator struct {
	config    Config
	validator model.TileValidator
	logger    *slog.Logger
}

func NewEnumerator(config Config, validator model.TileValidator, logger *slog.Logger) Enumerator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &parallelEnumerator{
		config:    config,
		validator: validator,
		logger:    logger,
	}
}

func (enumerator *parallelEnumerator) Enumerate(ctx context.Context) (Tally, error) {
	if err := enumerator.config.Validate(); err != nil {
		return Tally{}, err
	}

	var (
		mutex sync.Mutex
		tally Tally
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(enumerator.config.Workers)

	chunkSize := uint32(min(enumerator.config.ChunkSize, Configurations))
	for from := uint32(0); from < Configurations; from += chunkSize {
		to := min(from+chunkSize, Configurations)

		if groupCtx.Err() != nil {
			break // Stop scheduling, the error is collected below
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			partial := CountRange(enumerator.validator, from, to)
			enumerator.logger.Debug("enumerated chunk", "from", from, "to", to, "included", partial.Included)

			mutex.Lock()
			defer mutex.Unlock()
			tally.Merge(partial)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Tally{}, err
	}
	if err := ctx.Err(); err != nil {
		return Tally{}, err
	}

	enumerator.logger.Debug("enumeration finished", "included", tally.Included, "excluded", tally.Excluded)
	return tally, nil
}

// CountRange tallies the packed configurations in [from, to)
func CountRange(validator model.TileValidator, from, to uint32) Tally {
	var tally Tally
	for packed := from; packed < to; packed++ {
		tally.Add(validator.Explain(model.TileFromBits(packed)))
	}
	return tally
}
