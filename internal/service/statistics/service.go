// Package statistics rolls a user's completed sessions, decks and flashcards
// up into an overview report for a time window.
package statistics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// RecentSessionsLimit is how many recent sessions a report carries.
const RecentSessionsLimit = 5

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sessionReader interface {
	ListCompletedSummaries(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.SessionSummary, error)
	RecentCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecentSession, error)
}

type ownerCounter interface {
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type reportCache interface {
	Get(ctx context.Context, userID uuid.UUID, r domain.TimeRange) (*domain.StatisticsReport, int64, error)
	Set(ctx context.Context, userID uuid.UUID, generation int64, report *domain.StatisticsReport) error
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the statistics aggregator. It never writes to the stores.
type Service struct {
	sessions sessionReader
	decks    ownerCounter
	cards    ownerCounter
	cache    reportCache
	clock    clock
	log      *slog.Logger
}

// NewService creates a statistics aggregator. cache may be nil.
func NewService(log *slog.Logger, sessions sessionReader, decks, cards ownerCounter, cache reportCache) *Service {
	return &Service{
		sessions: sessions,
		decks:    decks,
		cards:    cards,
		cache:    cache,
		clock:    systemClock{},
		log:      log.With("service", "statistics"),
	}
}

// GetStatisticsInput selects the report window. Unknown values fall back to 7d.
type GetStatisticsInput struct {
	Range string
}

// GetUserStatistics builds the caller's report for the requested window.
// Lifetime deck and flashcard counts and the recent-session list ignore the window.
func (s *Service) GetUserStatistics(ctx context.Context, input GetStatisticsInput) (*domain.StatisticsReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tr := domain.ParseTimeRange(input.Range)
	if string(tr) != input.Range {
		s.log.DebugContext(ctx, "time range defaulted",
			slog.String("requested", input.Range),
			slog.String("used", tr.String()),
		)
	}

	cached, gen, cacheable := s.fromCache(ctx, userID, tr)
	if cached != nil {
		return cached, nil
	}

	report, err := s.aggregate(ctx, userID, tr)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, userID, gen, report); err != nil {
			s.log.WarnContext(ctx, "statistics cache write failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return report, nil
}

// fromCache returns a cached report, or the generation a freshly built report
// must be stored under. cacheable is false when there is no usable cache.
func (s *Service) fromCache(ctx context.Context, userID uuid.UUID, tr domain.TimeRange) (report *domain.StatisticsReport, gen int64, cacheable bool) {
	if s.cache == nil {
		return nil, 0, false
	}

	report, gen, err := s.cache.Get(ctx, userID, tr)
	if err != nil {
		s.log.WarnContext(ctx, "statistics cache read failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, 0, false
	}
	return report, gen, true
}

func (s *Service) aggregate(ctx context.Context, userID uuid.UUID, tr domain.TimeRange) (*domain.StatisticsReport, error) {
	var since *time.Time
	if t, bounded := tr.Since(s.clock.Now()); bounded {
		since = &t
	}

	var (
		summaries  []domain.SessionSummary
		recent     []domain.RecentSession
		totalDecks int
		totalCards int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summaries, err = s.sessions.ListCompletedSummaries(gctx, userID, since)
		return unavailable("list completed sessions", err)
	})

	g.Go(func() error {
		var err error
		recent, err = s.sessions.RecentCompleted(gctx, userID, RecentSessionsLimit)
		return unavailable("list recent sessions", err)
	})

	g.Go(func() error {
		var err error
		totalDecks, err = s.decks.CountByOwner(gctx, userID)
		return unavailable("count decks", err)
	})

	g.Go(func() error {
		var err error
		totalCards, err = s.cards.CountByOwner(gctx, userID)
		return unavailable("count flashcards", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	count, minutes, avg := domain.SummarizeSessions(summaries)

	return &domain.StatisticsReport{
		TimeRange:       tr,
		TotalSessions:   count,
		TotalStudyTime:  minutes,
		AverageScore:    avg,
		TotalDecks:      totalDecks,
		TotalFlashcards: totalCards,
		RecentSessions:  recent,
	}, nil
}

// unavailable marks a store failure as ErrUnavailable unless it already is
// one or is a context error.
func unavailable(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return domain.Unavailable(op, err)
	}
}
