package usecase

import (
	"context"

	"moview/internal/data/entity"
	"moview/internal/dto/response"
	"moview/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SuggestionService interface {
	Suggestions(ctx context.Context) ([]response.MovieResponse, error)
}

type suggestionService struct {
	searcher MovieSearcher
	config   utils.SuggestionConfig
	log      *zap.Logger
}

func NewSuggestionService(searcher MovieSearcher, config utils.SuggestionConfig, log *zap.Logger) SuggestionService {
	if config.PerKeyword < 1 {
		config.PerKeyword = 2
	}
	return &suggestionService{
		searcher: searcher,
		config:   config,
		log:      log.With(zap.String("service", "suggestion")),
	}
}

// Suggestions never fails on upstream errors: keywords that fail contribute nothing
// and a total failure yields an empty list.
func (s *suggestionService) Suggestions(ctx context.Context) ([]response.MovieResponse, error) {
	movies := AggregateSuggestions(ctx, s.searcher, s.config.Keywords, s.config.PerKeyword, s.config.Concurrency, s.log)

	if len(movies) == 0 && len(s.config.Keywords) > 0 {
		s.log.Warn("No suggestions available", zap.Strings("keywords", s.config.Keywords))
	}

	s.log.Info("Suggestions aggregated",
		zap.Int("keywords", len(s.config.Keywords)),
		zap.Int("count", len(movies)),
	)

	return response.MoviesToResponse(movies), nil
}

// AggregateSuggestions searches every keyword concurrently and keeps at most perKeyword
// results from each. It returns only after all searches have finished; the merged list
// follows keyword order and holds at most perKeyword*len(keywords) movies.
// concurrency <= 0 means one in-flight search per keyword.
func AggregateSuggestions(
	ctx context.Context,
	searcher MovieSearcher,
	keywords []string,
	perKeyword int,
	concurrency int,
	log *zap.Logger,
) []entity.Movie {
	if len(keywords) == 0 || perKeyword < 1 {
		return []entity.Movie{}
	}

	// one slot per keyword, each written by exactly one goroutine
	slots := make([][]entity.Movie, len(keywords))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, keyword := range keywords {
		g.Go(func() error {
			movies, err := searcher.Search(ctx, keyword)
			if err != nil {
				log.Warn("Suggestion search failed",
					zap.String("keyword", keyword),
					zap.Error(err),
				)
				return nil
			}

			n := min(len(movies), perKeyword)
			slots[i] = append([]entity.Movie(nil), movies[:n]...)
			return nil
		})
	}

	// searches never return errors, Wait is the join barrier
	_ = g.Wait()

	merged := make([]entity.Movie, 0, perKeyword*len(keywords))
	for _, slot := range slots {
		merged = append(merged, slot...)
	}
	return merged
}
