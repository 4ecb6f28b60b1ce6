package workers

import "sync"

var wg sync.WaitGroup

func InitWorkers() {
	FlushBlogViews(&wg)
	RefreshBlogHotSpot(&wg)
	ScheduleTrendingRefresh()
}

func Wait() {
	wg.Wait()
}
