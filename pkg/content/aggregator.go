package content

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/apperrors"
	"github.com/brandvoice/voice-engine/pkg/models"
)

// separator joins individual content pieces in the aggregated blob.
const separator = "\n\n"

// Aggregator combines scraped page text and writing samples into a single
// blob and derives the source tag. A failed URL is skipped, not fatal; the
// request only fails when nothing at all contributed.
type Aggregator struct {
	fetcher PageFetcher
	logger  *zap.Logger
}

// NewAggregator creates an aggregator using the given fetcher.
func NewAggregator(fetcher PageFetcher, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger.Named("content"),
	}
}

// Aggregate fetches each URL, concatenates extracted page text with the
// writing samples in input order, and derives the source tag:
// url / writing_sample / mixed by which kinds of source contributed.
// Returns apperrors.ErrNoContent when all sources fail or none were given.
func (a *Aggregator) Aggregate(ctx context.Context, urls, writingSamples []string) (string, models.VoiceSource, error) {
	var pieces []string

	urlContributed := false
	for _, pageURL := range urls {
		text, err := a.fetcher.FetchText(ctx, pageURL)
		if err != nil {
			// Per-source failures are tolerated; the pipeline only needs
			// one reachable source.
			a.logger.Warn("Skipping unreachable content source",
				zap.String("url", pageURL),
				zap.Error(err))
			continue
		}
		pieces = append(pieces, text)
		urlContributed = true
	}

	sampleContributed := false
	for _, sample := range writingSamples {
		sample = strings.TrimSpace(sample)
		if sample == "" {
			continue
		}
		pieces = append(pieces, sample)
		sampleContributed = true
	}

	if len(pieces) == 0 {
		return "", "", apperrors.ErrNoContent
	}

	var source models.VoiceSource
	switch {
	case urlContributed && sampleContributed:
		source = models.SourceMixed
	case urlContributed:
		source = models.SourceURL
	default:
		source = models.SourceWritingSample
	}

	return strings.Join(pieces, separator), source, nil
}
