package workers

import (
	"sync"
	"time"

	"bloghive/dao/redis"
	"bloghive/logger"

	"github.com/pkg/errors"
)

// checkError logs the error and shortens the wait so the loop retries soon.
func checkError(err error, waitTime *time.Duration, wg *sync.WaitGroup) bool {
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.ErrorWithStack(err)
		*waitTime = time.Second * 10
		wg.Done()
		return false
	}
	return true
}
