package localcache

import (
	"github.com/bluele/gcache"
	priorityqueue "github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"
)

// IncrView accumulates one counted read for a blog. Reports whether the blog
// is new to the view cache.
func IncrView(blogID int64, offset int64) (bool, error) {
	view, err := viewCache.Get(blogID)
	if err == nil { // cache hit
		if view.(int64)+offset <= 0 {
			viewCache.Remove(blogID)
		} else {
			viewCache.Set(blogID, view.(int64)+offset)
		}
		return false, nil
	} else if errors.Is(err, gcache.KeyNotFoundError) { // cache miss
		return true, errors.Wrap(viewCache.Set(blogID, offset), "localcache:IncrView: Set")
	}
	return false, errors.Wrap(err, "localcache:IncrView: Get")
}

// GetTopKBlogIDsByViews returns the k most-read blogs since the last drain.
func GetTopKBlogIDsByViews(k int) []int64 {
	pq := priorityqueue.NewWith(cmp) // min-heap over view counts

	all := viewCache.GetALL(false)
	for key, value := range all {
		oView := viewObj{
			blogID: key.(int64),
			view:   value.(int64),
		}

		// top-K
		if pq.Size() == k {
			t, _ := pq.Peek()
			topView := t.(viewObj)
			if oView.view > topView.view {
				pq.Dequeue()
				pq.Enqueue(oView)
			}
		} else {
			pq.Enqueue(oView)
		}
	}

	res := make([]int64, 0, k)
	for {
		oView, ok := pq.Dequeue()
		if !ok {
			break
		}
		res = append(res, oView.(viewObj).blogID)
	}

	return res
}

// DrainViews hands the accumulated read counts to the caller and clears the
// cache. The flush worker persists the result.
func DrainViews() map[int64]int64 {
	all := viewCache.GetALL(false)
	drained := make(map[int64]int64, len(all))
	for key, value := range all {
		blogID := key.(int64)
		drained[blogID] = value.(int64)
		viewCache.Remove(blogID)
	}
	return drained
}

type viewObj struct {
	blogID int64
	view   int64
}

func cmp(a, b interface{}) int {
	aAsserted := a.(viewObj)
	bAsserted := b.(viewObj)
	switch {
	case aAsserted.view > bAsserted.view:
		return 1
	case aAsserted.view < bAsserted.view:
		return -1
	default:
		return 0
	}
}
