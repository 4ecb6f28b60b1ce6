package localcache

import (
	"testing"

	"github.com/spf13/viper"
)

func setupViewCache(t *testing.T) {
	t.Helper()
	viper.Set("localcache.size", 64)
	InitLocalCache()
}

func TestIncrViewAccumulates(t *testing.T) {
	setupViewCache(t)

	newMember, err := IncrView(100, 1)
	if err != nil {
		t.Fatalf("IncrView: %v", err)
	}
	if !newMember {
		t.Error("first view should report a new member")
	}

	newMember, err = IncrView(100, 2)
	if err != nil {
		t.Fatalf("IncrView: %v", err)
	}
	if newMember {
		t.Error("second view should not report a new member")
	}

	drained := DrainViews()
	if drained[100] != 3 {
		t.Errorf("drained count = %d, want 3", drained[100])
	}
}

func TestDrainViewsClears(t *testing.T) {
	setupViewCache(t)

	IncrView(1, 5)
	IncrView(2, 1)

	first := DrainViews()
	if len(first) != 2 {
		t.Fatalf("first drain returned %d entries, want 2", len(first))
	}
	second := DrainViews()
	if len(second) != 0 {
		t.Errorf("second drain returned %d entries, want 0", len(second))
	}
}

func TestGetTopKBlogIDsByViews(t *testing.T) {
	setupViewCache(t)

	IncrView(1, 10)
	IncrView(2, 50)
	IncrView(3, 30)
	IncrView(4, 5)

	top := GetTopKBlogIDsByViews(2)
	if len(top) != 2 {
		t.Fatalf("top-K returned %d ids, want 2", len(top))
	}
	got := map[int64]bool{top[0]: true, top[1]: true}
	if !got[2] || !got[3] {
		t.Errorf("top-K = %v, want blogs 2 and 3", top)
	}
}

func TestIncrViewNegativeOffsetRemoves(t *testing.T) {
	setupViewCache(t)

	IncrView(7, 2)
	IncrView(7, -2)

	drained := DrainViews()
	if _, ok := drained[7]; ok {
		t.Errorf("blog 7 should have been removed at zero views, got %v", drained)
	}
}
