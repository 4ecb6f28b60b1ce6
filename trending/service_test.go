package trending

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"bloghive/models"

	"github.com/pkg/errors"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	blogs map[int64]*models.Blog

	listErr  error
	getErr   error
	bulkErr  error
	writeErr error

	bulkCalls int
}

func newMemStore(blogs ...*models.Blog) *memStore {
	m := &memStore{blogs: make(map[int64]*models.Blog)}
	for _, b := range blogs {
		m.blogs[b.BlogID] = b
	}
	return m
}

func (m *memStore) ListPublicSince(_ context.Context, cutoff time.Time) ([]*models.Blog, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.Blog
	for _, b := range m.blogs {
		if b.Visibility == models.VisibilityPublic && !b.CreatedAt.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) GetByBlogID(_ context.Context, blogID int64) (*models.Blog, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	blog, ok := m.blogs[blogID]
	if !ok {
		return nil, nil
	}
	return blog, nil
}

func (m *memStore) BulkWriteScores(_ context.Context, updates []ScoreUpdate, reset StaleReset) error {
	if m.bulkErr != nil {
		return m.bulkErr
	}
	m.bulkCalls++
	for _, u := range updates {
		if blog, ok := m.blogs[u.BlogID]; ok {
			blog.TrendingScore = u.Score
			blog.TrendingScoreUpdatedAt = u.UpdatedAt
		}
	}
	for _, blog := range m.blogs {
		if blog.Visibility == models.VisibilityPublic &&
			blog.CreatedAt.Before(reset.Cutoff) &&
			blog.TrendingScore > reset.MinScore {
			blog.TrendingScore = 0
			blog.TrendingScoreUpdatedAt = reset.At
		}
	}
	return nil
}

func (m *memStore) WriteScore(_ context.Context, blogID int64, score float64, at time.Time) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	if blog, ok := m.blogs[blogID]; ok {
		blog.TrendingScore = score
		blog.TrendingScoreUpdatedAt = at
	}
	return nil
}

func (m *memStore) matches(blog *models.Blog, f ListFilter) bool {
	if blog.Visibility != models.VisibilityPublic || blog.TrendingScore < f.MinScore {
		return false
	}
	return f.CategoryID == 0 || blog.CategoryID == f.CategoryID
}

func (m *memStore) CountTrending(_ context.Context, f ListFilter) (int64, error) {
	var n int64
	for _, blog := range m.blogs {
		if m.matches(blog, f) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) ListTrendingSorted(_ context.Context, f ListFilter, offset, limit int64) ([]*models.Blog, error) {
	var all []*models.Blog
	for _, blog := range m.blogs {
		if m.matches(blog, f) {
			all = append(all, blog)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].TrendingScore > all[j].TrendingScore })
	if offset >= int64(len(all)) {
		return nil, nil
	}
	all = all[offset:]
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func newTestService(store Store) *Service {
	return NewService(store, DefaultConfig(), WithClock(func() time.Time { return frozenNow }))
}

func TestRecomputeAll(t *testing.T) {
	fresh := &models.Blog{
		BlogID: 1, Visibility: models.VisibilityPublic,
		LikeCount: 10, CommentCount: 2, ReadCount: 100,
		CreatedAt: frozenNow.Add(-time.Hour),
	}
	private := &models.Blog{
		BlogID: 2, Visibility: models.VisibilityPrivate,
		LikeCount: 500, CreatedAt: frozenNow.Add(-time.Hour),
		TrendingScore: 42,
	}
	stale := &models.Blog{
		BlogID: 3, Visibility: models.VisibilityPublic,
		LikeCount: 30, CreatedAt: frozenNow.Add(-10 * 24 * time.Hour),
		TrendingScore: 5.5,
	}
	store := newMemStore(fresh, private, stale)
	svc := newTestService(store)

	updated, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("RecomputeAll: %v", err)
	}
	if updated != 1 {
		t.Fatalf("updated = %d, want 1", updated)
	}

	want, _ := CalculateScore(svc.Config(), fresh, frozenNow)
	if fresh.TrendingScore != want {
		t.Errorf("fresh score = %v, want %v", fresh.TrendingScore, want)
	}
	if !fresh.TrendingScoreUpdatedAt.Equal(frozenNow) {
		t.Errorf("fresh score timestamp = %v, want %v", fresh.TrendingScoreUpdatedAt, frozenNow)
	}
	if stale.TrendingScore != 0 {
		t.Errorf("stale score = %v, want exactly 0", stale.TrendingScore)
	}
	if private.TrendingScore != 42 {
		t.Errorf("private score = %v, want untouched 42", private.TrendingScore)
	}
}

func TestRecomputeAllIdempotent(t *testing.T) {
	store := newMemStore(
		&models.Blog{BlogID: 1, Visibility: models.VisibilityPublic, LikeCount: 7, CreatedAt: frozenNow.Add(-5 * time.Hour)},
		&models.Blog{BlogID: 2, Visibility: models.VisibilityPublic, ReadCount: 300, CreatedAt: frozenNow.Add(-2 * 24 * time.Hour)},
	)
	svc := newTestService(store)

	first, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("first RecomputeAll: %v", err)
	}
	scores := map[int64]float64{}
	for id, blog := range store.blogs {
		scores[id] = blog.TrendingScore
	}

	second, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("second RecomputeAll: %v", err)
	}
	if first != second {
		t.Fatalf("updated counts differ: %d vs %d", first, second)
	}
	for id, blog := range store.blogs {
		if blog.TrendingScore != scores[id] {
			t.Errorf("blog %d: score changed between runs: %v -> %v", id, scores[id], blog.TrendingScore)
		}
	}
}

func TestRecomputeAllResetsWithEmptyWindow(t *testing.T) {
	stale := &models.Blog{
		BlogID: 1, Visibility: models.VisibilityPublic,
		CreatedAt: frozenNow.Add(-30 * 24 * time.Hour), TrendingScore: 9.9,
	}
	store := newMemStore(stale)
	svc := newTestService(store)

	updated, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("RecomputeAll: %v", err)
	}
	if updated != 0 {
		t.Fatalf("updated = %d, want 0", updated)
	}
	if stale.TrendingScore != 0 {
		t.Fatalf("stale score = %v, want 0 even with an empty window", stale.TrendingScore)
	}
}

func TestRecomputeAllStorageFailure(t *testing.T) {
	store := newMemStore()
	store.listErr = errors.New("connection refused")
	if _, err := newTestService(store).RecomputeAll(context.Background()); err == nil {
		t.Fatal("want fetch error propagated")
	}

	store = newMemStore(&models.Blog{BlogID: 1, Visibility: models.VisibilityPublic, CreatedAt: frozenNow})
	store.bulkErr = errors.New("deadlock")
	if _, err := newTestService(store).RecomputeAll(context.Background()); err == nil {
		t.Fatal("want bulk-write error propagated")
	}
}

func TestUpdateBlogScore(t *testing.T) {
	blog := &models.Blog{
		BlogID: 7, Visibility: models.VisibilityPublic,
		LikeCount: 10, CommentCount: 2, ReadCount: 100,
		CreatedAt: frozenNow,
	}
	store := newMemStore(blog)
	svc := newTestService(store)

	score, err := svc.UpdateBlogScore(context.Background(), 7)
	if err != nil {
		t.Fatalf("UpdateBlogScore: %v", err)
	}
	if score == nil || *score != 154.0 {
		t.Fatalf("score = %v, want 154.0", score)
	}
	if blog.TrendingScore != 154.0 {
		t.Fatalf("persisted score = %v, want 154.0", blog.TrendingScore)
	}
}

func TestUpdateBlogScoreNotFound(t *testing.T) {
	svc := newTestService(newMemStore())
	score, err := svc.UpdateBlogScore(context.Background(), 404)
	if err != nil {
		t.Fatalf("UpdateBlogScore: %v", err)
	}
	if score != nil {
		t.Fatalf("score = %v, want nil for a missing blog", *score)
	}
}

func TestUpdateBlogScoreStorageFailure(t *testing.T) {
	store := newMemStore(&models.Blog{BlogID: 1, Visibility: models.VisibilityPublic, CreatedAt: frozenNow})
	store.writeErr = errors.New("io timeout")
	if _, err := newTestService(store).UpdateBlogScore(context.Background(), 1); err == nil {
		t.Fatal("want write error propagated")
	}
}

func trendingFixture(n int) *memStore {
	store := newMemStore()
	for i := 1; i <= n; i++ {
		store.blogs[int64(i)] = &models.Blog{
			BlogID:        int64(i),
			Visibility:    models.VisibilityPublic,
			CategoryID:    int64(i%2 + 1),
			TrendingScore: float64(i), // distinct, already cached
			CreatedAt:     frozenNow.Add(-time.Hour),
		}
	}
	return store
}

func TestListTrendingPagination(t *testing.T) {
	const total = 23
	svc := newTestService(trendingFixture(total))

	for page := int64(1); page <= 5; page++ {
		t.Run(fmt.Sprintf("page_%d", page), func(t *testing.T) {
			const limit = int64(10)
			res, err := svc.ListTrending(context.Background(), ListParams{Limit: limit, Page: page})
			if err != nil {
				t.Fatalf("ListTrending: %v", err)
			}
			if int64(len(res.Blogs)) > limit {
				t.Fatalf("returned %d items, want <= %d", len(res.Blogs), limit)
			}
			if res.Pagination.TotalBlogs != total {
				t.Fatalf("totalBlogs = %d, want %d", res.Pagination.TotalBlogs, total)
			}
			wantMore := page*limit < total
			if res.Pagination.HasMore != wantMore {
				t.Fatalf("hasMore = %v, want %v", res.Pagination.HasMore, wantMore)
			}
			for i := 1; i < len(res.Blogs); i++ {
				if res.Blogs[i].TrendingScore > res.Blogs[i-1].TrendingScore {
					t.Fatal("results not sorted by score descending")
				}
			}
		})
	}
}

func TestListTrendingDefaults(t *testing.T) {
	store := trendingFixture(15)
	// One blog below the default threshold must drop out.
	store.blogs[1].TrendingScore = 0.05
	svc := newTestService(store)

	res, err := svc.ListTrending(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("ListTrending: %v", err)
	}
	if len(res.Blogs) != DefaultLimit {
		t.Fatalf("returned %d items, want default limit %d", len(res.Blogs), DefaultLimit)
	}
	if res.Pagination.CurrentPage != DefaultPage {
		t.Fatalf("currentPage = %d, want %d", res.Pagination.CurrentPage, DefaultPage)
	}
	if res.Pagination.TotalBlogs != 14 {
		t.Fatalf("totalBlogs = %d, want 14 (sub-threshold blog filtered)", res.Pagination.TotalBlogs)
	}
	if res.Pagination.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", res.Pagination.TotalPages)
	}
}

func TestListTrendingCategoryFilter(t *testing.T) {
	svc := newTestService(trendingFixture(10))

	res, err := svc.ListTrending(context.Background(), ListParams{CategoryID: 1, Limit: 100})
	if err != nil {
		t.Fatalf("ListTrending: %v", err)
	}
	if len(res.Blogs) == 0 {
		t.Fatal("want at least one blog in category 1")
	}
	for _, blog := range res.Blogs {
		if blog.CategoryID != 1 {
			t.Fatalf("blog %d has category %d, want 1", blog.BlogID, blog.CategoryID)
		}
	}
}

func TestListTrendingExplicitMinScore(t *testing.T) {
	svc := newTestService(trendingFixture(10))

	minScore := 8.0
	res, err := svc.ListTrending(context.Background(), ListParams{MinScore: &minScore, Limit: 100})
	if err != nil {
		t.Fatalf("ListTrending: %v", err)
	}
	if res.Pagination.TotalBlogs != 3 { // scores 8, 9, 10
		t.Fatalf("totalBlogs = %d, want 3", res.Pagination.TotalBlogs)
	}
	for _, blog := range res.Blogs {
		if blog.TrendingScore < minScore {
			t.Fatalf("blog %d score %v below explicit minScore", blog.BlogID, blog.TrendingScore)
		}
	}
}
