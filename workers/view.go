package workers

import (
	"sync"
	"time"

	"bloghive/dao/localcache"
	"bloghive/dao/mysql"
	"bloghive/logger"
	"bloghive/logic"

	"github.com/spf13/viper"
)

// FlushBlogViews periodically drains the locally accumulated read counters
// into mysql, then refreshes each touched blog's trending score.
func FlushBlogViews(wg *sync.WaitGroup) {
	waitTime := time.Second * time.Duration(viper.GetInt64("service.hot_spot.view_flush_time"))

	go func() {
		for {
			time.Sleep(waitTime)
			wg.Add(1)

			reads := localcache.DrainViews()
			if len(reads) == 0 {
				wg.Done()
				continue
			}

			if err := mysql.AddBlogReads(reads); err != nil {
				requeueViews(reads)
				checkError(err, &waitTime, wg)
				continue
			}

			for blogID := range reads {
				logic.BumpBlogScore(blogID)
			}

			wg.Done()
		}
	}()
}

// requeueViews puts drained counts back after a failed flush so no counted
// read is lost; they merge with whatever arrived in the meantime and ride
// the next cycle.
func requeueViews(reads map[int64]int64) {
	for blogID, n := range reads {
		if _, err := localcache.IncrView(blogID, n); err != nil {
			logger.Warnf("workers:requeueViews: IncrView for blog %d failed: %v", blogID, err)
		}
	}
}
