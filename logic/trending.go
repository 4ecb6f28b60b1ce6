package logic

import (
	"context"
	"fmt"
	"time"

	"bloghive/logger"
	"bloghive/models"
	"bloghive/trending"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/viper"
)

var trendingService *trending.Service

// scorePool carries the fire-and-forget score refreshes triggered by
// engagement events.
var scorePool *ants.Pool

func InitTrending(store trending.Store) {
	trendingService = trending.NewService(store, trending.FromSettings())

	size := viper.GetInt("service.trending.score_pool_size")
	var err error
	scorePool, err = ants.NewPool(size, ants.WithNonblocking(true))
	if err != nil {
		panic(fmt.Sprintf("trending score pool: %s", err.Error()))
	}
}

func GetTrendingService() *trending.Service {
	return trendingService
}

// BumpBlogScore refreshes one blog's cached score in the background, called
// after every engagement-counter change. A drop on pool saturation is fine,
// the periodic recompute reconciles within one cycle.
func BumpBlogScore(blogID int64) {
	err := scorePool.Submit(func() {
		timeout := time.Second * time.Duration(viper.GetInt64("service.timeout"))
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := trendingService.UpdateBlogScore(ctx, blogID); err != nil {
			logger.ErrorWithStack(err)
		}
	})
	if err != nil {
		logger.Warnf("logic:BumpBlogScore: submit for blog %d failed: %v", blogID, err)
	}
}

// RefreshTrendingScores recomputes every score in the active window. Invoked
// by the scheduler worker; the timeout bounds the whole batch.
func RefreshTrendingScores() (int, error) {
	timeout := time.Second * time.Duration(viper.GetInt64("service.trending.recompute_timeout"))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return trendingService.RecomputeAll(ctx)
}

// GetTrendingBlogs serves the cached trending list. A zero MinScore means
// "use the configured threshold".
func GetTrendingBlogs(params models.ParamTrendingList) (*models.TrendingListDTO, error) {
	listParams := trending.ListParams{
		Limit:      params.Limit,
		Page:       params.Page,
		CategoryID: params.Category,
	}
	if params.MinScore > 0 {
		listParams.MinScore = &params.MinScore
	}

	timeout := time.Second * time.Duration(viper.GetInt64("service.timeout"))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return trendingService.ListTrending(ctx, listParams)
}
