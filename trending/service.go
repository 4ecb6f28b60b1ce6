package trending

import (
	"context"
	"time"

	"bloghive/models"

	"github.com/pkg/errors"
)

// ScoreUpdate is one staged write of the cached score.
type ScoreUpdate struct {
	BlogID    int64
	Score     float64
	UpdatedAt time.Time
}

// StaleReset zeroes the score of public blogs created before Cutoff whose
// cached score is still above MinScore.
type StaleReset struct {
	Cutoff   time.Time
	MinScore float64
	At       time.Time
}

// ListFilter selects public blogs by cached score for the reader queries.
type ListFilter struct {
	MinScore   float64
	CategoryID int64 // 0 = all categories
}

// Store is the storage port the trending service runs against. The concrete
// implementation lives in dao/mysql; tests use an in-memory fake.
//
// GetByBlogID returns (nil, nil) when no blog matches; every other error is a
// storage failure and is propagated unchanged.
type Store interface {
	ListPublicSince(ctx context.Context, cutoff time.Time) ([]*models.Blog, error)
	GetByBlogID(ctx context.Context, blogID int64) (*models.Blog, error)
	BulkWriteScores(ctx context.Context, updates []ScoreUpdate, reset StaleReset) error
	WriteScore(ctx context.Context, blogID int64, score float64, at time.Time) error
	CountTrending(ctx context.Context, f ListFilter) (int64, error)
	ListTrendingSorted(ctx context.Context, f ListFilter, offset, limit int64) ([]*models.Blog, error)
}

// ListParams are the reader options. Zero Limit/Page fall back to the
// documented defaults (10, 1); a nil MinScore falls back to the configured
// threshold.
type ListParams struct {
	Limit      int64
	Page       int64
	CategoryID int64
	MinScore   *float64
}

const (
	DefaultLimit = 10
	DefaultPage  = 1
)

type Option func(*Service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service owns the cached trending score: it is the only writer of
// trending_score and trending_score_updated_at.
type Service struct {
	store Store
	cfg   Config
	now   func() time.Time
}

func NewService(store Store, cfg Config, opts ...Option) *Service {
	s := &Service{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Config() Config {
	return s.cfg
}

// RecomputeAll refreshes the score of every public blog inside the time
// window and zeroes stale scores outside it, in one bulk write. It returns
// the number of refreshed blogs.
//
// Every write is an idempotent overwrite of a pure function's output, so a
// failed or doubled run is safe to repeat in full; overlapping runs are
// last-write-wins. The caller (workers) schedules exactly one instance.
func (s *Service) RecomputeAll(ctx context.Context) (int, error) {
	now := s.now()
	cutoff := now.Add(-time.Duration(s.cfg.TimeWindowDays * float64(24*time.Hour)))

	blogs, err := s.store.ListPublicSince(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "trending:RecomputeAll: ListPublicSince")
	}

	updates := make([]ScoreUpdate, 0, len(blogs))
	for _, blog := range blogs {
		score, err := CalculateScore(s.cfg, blog, now)
		if err != nil {
			return 0, errors.Wrap(err, "trending:RecomputeAll: CalculateScore")
		}
		updates = append(updates, ScoreUpdate{
			BlogID:    blog.BlogID,
			Score:     score,
			UpdatedAt: now,
		})
	}

	reset := StaleReset{
		Cutoff:   cutoff,
		MinScore: s.cfg.MinScoreThreshold,
		At:       now,
	}
	if err := s.store.BulkWriteScores(ctx, updates, reset); err != nil {
		return 0, errors.Wrap(err, "trending:RecomputeAll: BulkWriteScores")
	}

	return len(updates), nil
}

// UpdateBlogScore recomputes and persists the score of one blog, typically
// right after an engagement event. A missing blog is a benign no-op and
// returns (nil, nil).
//
// Racing updaters for the same blog each score their own counter snapshot and
// the last write wins; RecomputeAll reconciles any staleness within a cycle.
func (s *Service) UpdateBlogScore(ctx context.Context, blogID int64) (*float64, error) {
	blog, err := s.store.GetByBlogID(ctx, blogID)
	if err != nil {
		return nil, errors.Wrap(err, "trending:UpdateBlogScore: GetByBlogID")
	}
	if blog == nil {
		return nil, nil
	}

	now := s.now()
	score, err := CalculateScore(s.cfg, blog, now)
	if err != nil {
		return nil, errors.Wrap(err, "trending:UpdateBlogScore: CalculateScore")
	}

	if err := s.store.WriteScore(ctx, blogID, score, now); err != nil {
		return nil, errors.Wrap(err, "trending:UpdateBlogScore: WriteScore")
	}
	return &score, nil
}

// ListTrending serves paginated blogs ordered by the cached score. It never
// recomputes: reads trade score freshness for latency.
func (s *Service) ListTrending(ctx context.Context, params ListParams) (*models.TrendingListDTO, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := params.Page
	if page <= 0 {
		page = DefaultPage
	}
	minScore := s.cfg.MinScoreThreshold
	if params.MinScore != nil {
		minScore = *params.MinScore
	}

	f := ListFilter{
		MinScore:   minScore,
		CategoryID: params.CategoryID,
	}
	skip := (page - 1) * limit

	blogs, err := s.store.ListTrendingSorted(ctx, f, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "trending:ListTrending: ListTrendingSorted")
	}
	total, err := s.store.CountTrending(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "trending:ListTrending: CountTrending")
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &models.TrendingListDTO{
		Blogs: blogs,
		Pagination: models.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalBlogs:  total,
			HasMore:     skip+int64(len(blogs)) < total,
		},
	}, nil
}
