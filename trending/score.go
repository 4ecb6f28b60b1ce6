package trending

import (
	"math"
	"time"

	bloghive "bloghive/errors"
	"bloghive/models"

	"github.com/spf13/viper"
)

const (
	millisPerDay  = 24 * 60 * 60 * 1000
	millisPerHour = 60 * 60 * 1000
)

// Config holds the scoring constants. Zero values are never meaningful, build
// one with DefaultConfig or FromSettings.
type Config struct {
	LikeWeight    float64
	CommentWeight float64
	ShareWeight   float64
	ReadWeight    float64

	HalfLifeDays      float64 // score halves every HalfLifeDays of age
	TimeWindowDays    float64 // horizon considered by RecomputeAll
	VelocityBonus     float64 // fraction of engagement-per-hour added on top
	MinScoreThreshold float64 // floor below which a blog is not trending
}

func DefaultConfig() Config {
	return Config{
		LikeWeight:    3,
		CommentWeight: 5, // comments take the most effort
		ShareWeight:   4,
		ReadWeight:    1,

		HalfLifeDays:      3,
		TimeWindowDays:    7,
		VelocityBonus:     0.1,
		MinScoreThreshold: 0.1,
	}
}

// FromSettings reads the scoring constants from the loaded config file.
func FromSettings() Config {
	return Config{
		LikeWeight:    viper.GetFloat64("service.trending.like_weight"),
		CommentWeight: viper.GetFloat64("service.trending.comment_weight"),
		ShareWeight:   viper.GetFloat64("service.trending.share_weight"),
		ReadWeight:    viper.GetFloat64("service.trending.read_weight"),

		HalfLifeDays:      viper.GetFloat64("service.trending.half_life_days"),
		TimeWindowDays:    viper.GetFloat64("service.trending.time_window_days"),
		VelocityBonus:     viper.GetFloat64("service.trending.velocity_bonus"),
		MinScoreThreshold: viper.GetFloat64("service.trending.min_score_threshold"),
	}
}

// CalculateScore computes the time-decayed engagement score of a blog at the
// given instant. Pure arithmetic, no I/O.
//
// rawScore is the weighted counter sum; it decays exponentially with the
// blog's age (halving every HalfLifeDays), and a velocity bonus of
// VelocityBonus * engagement-per-hour is added on top. Ages in the future are
// clamped to zero, and velocity uses a 1-hour floor so brand-new blogs don't
// blow up the per-hour rate. The result is rounded half-away-from-zero to 3
// decimal places.
//
// Negative counters are treated as zero. A zero CreatedAt is a caller
// contract violation and fails with ErrInvalidCreatedAt.
func CalculateScore(cfg Config, blog *models.Blog, now time.Time) (float64, error) {
	if blog.CreatedAt.IsZero() {
		return 0, bloghive.ErrInvalidCreatedAt
	}

	rawScore := float64(clampCount(blog.LikeCount))*cfg.LikeWeight +
		float64(clampCount(blog.CommentCount))*cfg.CommentWeight +
		float64(clampCount(blog.ShareCount))*cfg.ShareWeight +
		float64(clampCount(blog.ReadCount))*cfg.ReadWeight

	ageMs := now.Sub(blog.CreatedAt).Milliseconds()
	if ageMs < 0 { // clock skew
		ageMs = 0
	}

	decayConstant := math.Ln2 / (cfg.HalfLifeDays * millisPerDay)
	timeDecayedScore := rawScore * math.Exp(-decayConstant*float64(ageMs))

	hoursOld := math.Max(float64(ageMs)/millisPerHour, 1)
	velocity := rawScore / hoursOld

	return round3(timeDecayedScore + velocity*cfg.VelocityBonus), nil
}

func clampCount(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// round3 rounds half away from zero, same as the JS Math.round the score was
// originally defined with (the domain is non-negative).
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
