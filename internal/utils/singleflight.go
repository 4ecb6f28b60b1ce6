package utils

import (
	"context"
	"time"

	bloghive "bloghive/errors"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// SfDoWithTimeout runs fn behind a singleflight group with a wall-clock
// timeout. The key is forgotten after interval so a failed result is not
// served forever.
func SfDoWithTimeout(sfGrp *singleflight.Group, key string, timeout, interval time.Duration, fn func() (any, error)) (v any, err error) {
	ch := sfGrp.DoChan(key, fn)

	go func() {
		time.Sleep(interval)
		sfGrp.Forget(key)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	select {
	case res := <-ch:
		return res.Val, errors.Wrap(res.Err, "utils:SfDoWithTimeout: fn")
	case <-ctx.Done():
		return nil, errors.Wrap(bloghive.ErrTimeout, "utils:SfDoWithTimeout: fn")
	}
}
