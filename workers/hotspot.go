package workers

import (
	"strconv"
	"sync"
	"time"

	"bloghive/dao/localcache"
	"bloghive/dao/mysql"
	"bloghive/logger"

	"github.com/spf13/viper"
)

// RefreshBlogHotSpot keeps the most viewed blogs' detail DTOs warm in the
// local cache so hot reads skip mysql entirely.
func RefreshBlogHotSpot(wg *sync.WaitGroup) {
	refreshTime := time.Second * time.Duration(viper.GetInt64("service.hot_spot.refresh_time"))
	size := viper.GetInt("service.hot_spot.size_for_blog")

	go func() {
		for {
			time.Sleep(refreshTime)
			wg.Add(1)

			blogIDs := localcache.GetTopKBlogIDsByViews(size)
			if len(blogIDs) == 0 {
				wg.Done()
				continue
			}

			idStrs := make([]string, 0, len(blogIDs))
			for _, blogID := range blogIDs {
				idStrs = append(idStrs, strconv.FormatInt(blogID, 10))
			}

			blogs, err := mysql.SelectBlogDetailDTOsByBlogIDs(idStrs)
			if !checkError(err, &refreshTime, wg) {
				continue
			}

			for _, blog := range blogs {
				if err := localcache.GetLocalCache().Set(localcache.BlogKey(blog.Slug), blog); err != nil {
					logger.Warnf("workers:RefreshBlogHotSpot: cache set failed: %v", err)
				}
			}

			wg.Done()
		}
	}()
}
