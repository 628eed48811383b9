package service

import (
	"context"

	"github.com/cinescope/cinescope-server/internal/domain"
	"github.com/cinescope/cinescope-server/internal/fanout"
)

const (
	taglineConcurrency = 5
	taglineLimit       = 20
)

// enrichTaglines sets the tagline of the first taglineLimit results in place.
// A failed lookup leaves that tagline empty.
func (s *CategoryService) enrichTaglines(ctx context.Context, results []domain.RankedResult) {
	n := min(len(results), taglineLimit)
	if n == 0 {
		return
	}

	taglines := fanout.Map(ctx, results[:n], taglineConcurrency, func(ctx context.Context, r domain.RankedResult) (string, error) {
		d, err := s.provider.Details(ctx, r.Item.MediaType, r.Item.ID)
		if err != nil {
			return "", err
		}
		return d.Tagline, nil
	})

	for i, t := range taglines {
		if t.OK() {
			results[i].Annotations.Tagline = t.Value
		}
	}
	if failed := fanout.Failures(taglines); failed > 0 {
		s.logger.Debug("tagline lookups failed", "failed", failed, "requested", n)
	}
}
