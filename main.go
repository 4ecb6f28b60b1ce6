package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"bloghive/dao/localcache"
	"bloghive/dao/mysql"
	"bloghive/dao/redis"
	"bloghive/internal/utils"
	"bloghive/logger"
	"bloghive/logic"
	"bloghive/router"
	"bloghive/settings"
	"bloghive/workers"

	"github.com/spf13/viper"
)

func init() {
	path := flag.String("c", "./config/config.json", "config path(file must be named 'config.json')")
	flag.Parse()

	settings.InitSettings(*path)

	logger.InitLogger()

	utils.InitSnowflake()
	utils.InitTrans()
	utils.InitToken()

	mysql.InitMySQL()
	logger.Infof("Initializing MySQL successfully")

	redis.InitRedis()
	logger.Infof("Initializing Redis successfully")

	localcache.InitLocalCache()
	logger.Infof("Initializing Localcache successfully")

	logic.InitTrending(mysql.NewTrendingStore())
	logger.Infof("Initializing trending service successfully")

	router.Init()
	logger.Infof("Initializing router successfully")

	workers.InitWorkers()
}

func main() {
	srv := router.GetServer()

	idleConnsClosed := make(chan interface{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*time.Duration(viper.GetInt64("server.shutdown_waiting_time")))
		defer cancel()
		logger.Infof("Shutting down HTTP Server(wait for all connections to be closed)...")

		if err := srv.Shutdown(ctx); err != nil {
			logger.Errorf("BlogHive server shutdown: %v", err)
		}
		logger.Infof("Http server closed successfully")
		close(idleConnsClosed)
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Errorf("HTTP server ListenAndServe: %v", err)
	}

	<-idleConnsClosed
	logger.Infof("Waiting for all background tasks to complete...")
	workers.StopTrendingRefresh()
	workers.Wait()
	logger.Infof("Done.\n\nBlogHive server closed successfully")
}
