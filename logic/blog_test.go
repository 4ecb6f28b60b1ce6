package logic

import (
	"strings"
	"testing"

	"bloghive/dao/localcache"
	"bloghive/models"

	"github.com/spf13/viper"
)

// The hot-spot warmer and the detail read share one cache key, so whatever
// the warmer stores is what the detail endpoint serves. A warmed entry must
// therefore carry the full content, not the truncated list preview.
func TestFetchBlogDetailServesWarmedEntryWhole(t *testing.T) {
	viper.Set("localcache.size", 16)
	localcache.InitLocalCache()

	content := strings.Repeat("x", 2048) // well past any list preview length
	warmed := &models.BlogDTO{
		BlogID:  42,
		Slug:    "hot-take",
		Title:   "hot take",
		Content: content,
	}
	if err := localcache.GetLocalCache().Set(localcache.BlogKey("hot-take"), warmed); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	got, err := fetchBlogDetail("hot-take")
	if err != nil {
		t.Fatalf("fetchBlogDetail: %v", err)
	}
	if got.BlogID != 42 {
		t.Errorf("BlogID = %d, want 42", got.BlogID)
	}
	if len(got.Content) != len(content) {
		t.Errorf("content length = %d, want %d", len(got.Content), len(content))
	}
}
