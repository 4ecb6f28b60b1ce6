package trending

import (
	"math"
	"testing"
	"time"

	bloghive "bloghive/errors"
	"bloghive/models"

	"github.com/pkg/errors"
)

var frozenNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newBlog(likes, comments, shares, reads int64, createdAt time.Time) *models.Blog {
	return &models.Blog{
		BlogID:       1,
		Visibility:   models.VisibilityPublic,
		LikeCount:    likes,
		CommentCount: comments,
		ShareCount:   shares,
		ReadCount:    reads,
		CreatedAt:    createdAt,
	}
}

func mustScore(t *testing.T, cfg Config, blog *models.Blog, now time.Time) float64 {
	t.Helper()
	score, err := CalculateScore(cfg, blog, now)
	if err != nil {
		t.Fatalf("CalculateScore: %v", err)
	}
	return score
}

// Fresh blog: raw = 10*3 + 2*5 + 0*4 + 100*1 = 140, no decay at age 0,
// velocity floored to one hour so the bonus is 140 * 0.1 = 14.
func TestCalculateScoreFreshBlog(t *testing.T) {
	score := mustScore(t, DefaultConfig(), newBlog(10, 2, 0, 100, frozenNow), frozenNow)
	if score != 154.0 {
		t.Fatalf("score = %v, want 154.0", score)
	}
}

// One half-life old, reads only: decayed component 100 -> ~50, velocity
// 100/72 per hour gives a bonus of ~0.139.
func TestCalculateScoreOneHalfLife(t *testing.T) {
	createdAt := frozenNow.Add(-3 * 24 * time.Hour)
	score := mustScore(t, DefaultConfig(), newBlog(0, 0, 0, 100, createdAt), frozenNow)

	want := 50.139
	if math.Abs(score-want) > want*0.005 {
		t.Fatalf("score = %v, want %v (±0.5%%)", score, want)
	}
}

func TestCalculateScoreHalfLifeProperty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VelocityBonus = 0 // isolate the decayed component

	atBirth := mustScore(t, cfg, newBlog(50, 0, 0, 0, frozenNow), frozenNow)
	oneHalfLife := mustScore(t, cfg, newBlog(50, 0, 0, 0, frozenNow.Add(-3*24*time.Hour)), frozenNow)

	if atBirth == 0 {
		t.Fatal("score at birth must be positive")
	}
	ratio := oneHalfLife / atBirth
	if math.Abs(ratio-0.5) > 0.01*0.5 {
		t.Fatalf("decay ratio at one half-life = %v, want 0.5 (±1%%)", ratio)
	}
}

func TestCalculateScoreMonotonicInCounters(t *testing.T) {
	cfg := DefaultConfig()
	createdAt := frozenNow.Add(-48 * time.Hour)
	base := mustScore(t, cfg, newBlog(10, 10, 10, 10, createdAt), frozenNow)

	bumps := []*models.Blog{
		newBlog(11, 10, 10, 10, createdAt),
		newBlog(10, 11, 10, 10, createdAt),
		newBlog(10, 10, 11, 10, createdAt),
		newBlog(10, 10, 10, 11, createdAt),
	}
	for i, blog := range bumps {
		if got := mustScore(t, cfg, blog, frozenNow); got <= base {
			t.Errorf("bump %d: score %v not greater than base %v", i, got, base)
		}
	}
}

func TestCalculateScoreOlderNeverHigher(t *testing.T) {
	cfg := DefaultConfig()
	ages := []time.Duration{
		0,
		10 * time.Minute, // inside the velocity floor bucket
		30 * time.Minute,
		2 * time.Hour,
		24 * time.Hour,
		6 * 24 * time.Hour,
	}
	prev := math.Inf(1)
	for _, age := range ages {
		score := mustScore(t, cfg, newBlog(20, 5, 1, 200, frozenNow.Add(-age)), frozenNow)
		if score > prev {
			t.Fatalf("age %v: score %v exceeds younger score %v", age, score, prev)
		}
		prev = score
	}

	// Identical sub-hour ages share both the decay input and the velocity
	// floor, so scores are equal.
	a := mustScore(t, cfg, newBlog(20, 5, 1, 200, frozenNow.Add(-10*time.Minute)), frozenNow)
	b := mustScore(t, cfg, newBlog(20, 5, 1, 200, frozenNow.Add(-10*time.Minute)), frozenNow)
	if a != b {
		t.Fatalf("equal inputs produced different scores: %v vs %v", a, b)
	}
}

func TestCalculateScoreNonNegativeThreeDecimals(t *testing.T) {
	cfg := DefaultConfig()
	cases := []*models.Blog{
		newBlog(0, 0, 0, 0, frozenNow),
		newBlog(1, 0, 0, 0, frozenNow.Add(-100*24*time.Hour)),
		newBlog(7, 3, 2, 999, frozenNow.Add(-37*time.Hour)),
	}
	for i, blog := range cases {
		score := mustScore(t, cfg, blog, frozenNow)
		if score < 0 {
			t.Errorf("case %d: negative score %v", i, score)
		}
		if got := round3(score); got != score {
			t.Errorf("case %d: score %v has more than 3 decimal places", i, score)
		}
	}
}

// Rounding mode is half away from zero: 0.0625 * 1000 = 62.5 rounds up to
// 0.063, where banker's rounding would land on 0.062.
func TestCalculateScoreRoundingHalfAwayFromZero(t *testing.T) {
	cfg := Config{
		LikeWeight:        0.0625, // exactly representable
		HalfLifeDays:      3,
		TimeWindowDays:    7,
		VelocityBonus:     0,
		MinScoreThreshold: 0.1,
	}
	score := mustScore(t, cfg, newBlog(1, 0, 0, 0, frozenNow), frozenNow)
	if score != 0.063 {
		t.Fatalf("score = %v, want 0.063 (half away from zero)", score)
	}
}

func TestCalculateScoreClampsNegativeCounters(t *testing.T) {
	cfg := DefaultConfig()
	got := mustScore(t, cfg, newBlog(-5, -1, 0, 100, frozenNow), frozenNow)
	want := mustScore(t, cfg, newBlog(0, 0, 0, 100, frozenNow), frozenNow)
	if got != want {
		t.Fatalf("score = %v, want %v (negative counters treated as zero)", got, want)
	}
}

func TestCalculateScoreClampsFutureCreatedAt(t *testing.T) {
	cfg := DefaultConfig()
	got := mustScore(t, cfg, newBlog(10, 0, 0, 0, frozenNow.Add(time.Hour)), frozenNow)
	want := mustScore(t, cfg, newBlog(10, 0, 0, 0, frozenNow), frozenNow)
	if got != want {
		t.Fatalf("score = %v, want %v (future timestamps clamp to age 0)", got, want)
	}
}

func TestCalculateScoreZeroCreatedAt(t *testing.T) {
	blog := newBlog(1, 1, 1, 1, time.Time{})
	if _, err := CalculateScore(DefaultConfig(), blog, frozenNow); !errors.Is(err, bloghive.ErrInvalidCreatedAt) {
		t.Fatalf("err = %v, want ErrInvalidCreatedAt", err)
	}
}
