package workers

import (
	"testing"

	"bloghive/dao/localcache"

	"github.com/spf13/viper"
)

// A failed persistence must not drop the drained counts: they go back into
// the view cache and merge with reads arriving before the retry.
func TestRequeueViewsKeepsCountsAfterFailedFlush(t *testing.T) {
	viper.Set("localcache.size", 64)
	localcache.InitLocalCache()

	localcache.IncrView(1, 2)
	localcache.IncrView(2, 5)

	reads := localcache.DrainViews()
	if len(reads) != 2 {
		t.Fatalf("drained %d entries, want 2", len(reads))
	}

	requeueViews(reads)

	localcache.IncrView(1, 1) // arrives between failure and retry

	again := localcache.DrainViews()
	if again[1] != 3 {
		t.Errorf("blog 1 count = %d, want 3", again[1])
	}
	if again[2] != 5 {
		t.Errorf("blog 2 count = %d, want 5", again[2])
	}
}
