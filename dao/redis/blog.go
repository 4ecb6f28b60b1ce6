package redis

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// MarkBlogRead records that a viewer read a blog, and reports whether this
// read should be counted. A read counts at most once per viewer per dedup
// window (the original used a 1h cookie for the same purpose).
func MarkBlogRead(viewer string, blogID int64, dedupTime time.Duration) (bool, error) {
	key := fmt.Sprintf("%s%s_%d", KeyBlogReadDedupStringPF, viewer, blogID)
	counted, err := setNX(key, 1, dedupTime)
	return counted, errors.Wrap(err, "mark blog read")
}
