package workers

import (
	"fmt"

	"bloghive/logger"
	"bloghive/logic"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

var trendingCron *cron.Cron

// ScheduleTrendingRefresh recomputes every cached trending score on a fixed
// cadence. One run at startup, then every refresh_interval seconds.
func ScheduleTrendingRefresh() {
	interval := viper.GetInt64("service.trending.refresh_interval")

	trendingCron = cron.New()
	_, err := trendingCron.AddFunc(fmt.Sprintf("@every %ds", interval), refreshTrendingScores)
	if err != nil {
		logger.Errorf("workers:ScheduleTrendingRefresh: AddFunc failed: %v", err)
		return
	}
	trendingCron.Start()

	go refreshTrendingScores()
}

func StopTrendingRefresh() {
	if trendingCron != nil {
		trendingCron.Stop()
	}
}

func refreshTrendingScores() {
	updated, err := logic.RefreshTrendingScores()
	if err != nil {
		logger.ErrorWithStack(err)
		return
	}
	logger.Infof("workers:refreshTrendingScores: updated %v blog scores", updated)
}
