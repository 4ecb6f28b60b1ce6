package localcache

import (
	"fmt"

	"github.com/bluele/gcache"
	"github.com/spf13/viper"
)

var localcache gcache.Cache

// viewCache accumulates blog reads in-process until a worker flushes them.
var viewCache gcache.Cache

func InitLocalCache() {
	size := viper.GetInt("localcache.size")
	localcache = gcache.New(size).LRU().Build()
	viewCache = gcache.New(size * 4).LRU().Build()
}

func GetLocalCache() gcache.Cache {
	return localcache
}

// BlogKey is the cache key of a blog detail DTO. The detail read path and the
// hot-spot warmer must agree on it, and both must store the full content.
func BlogKey(slug string) string {
	return fmt.Sprintf("blog_%s", slug)
}
