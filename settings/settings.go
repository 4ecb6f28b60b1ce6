package settings

import "github.com/spf13/viper"

func InitSettings(confPath string) {
	viper.SetDefault("server.ip", "")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.lang", "en")
	viper.SetDefault("server.start_time", "2024-03-01") // snowflake epoch
	viper.SetDefault("server.machine_id", 1)
	viper.SetDefault("server.develop_mode", false)
	viper.SetDefault("server.shutdown_waiting_time", 30) // force exit 30s after SIGINT

	viper.SetDefault("mysql.host", "127.0.0.1")
	viper.SetDefault("mysql.port", 3306)
	viper.SetDefault("mysql.username", "root")
	viper.SetDefault("mysql.password", "123456")
	viper.SetDefault("mysql.database", "bloghive")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("mysql.debug", false)

	viper.SetDefault("redis.host", "127.0.0.1")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.poolsize", 10)
	viper.SetDefault("redis.max_oper_time", 3)

	viper.SetDefault("logger.level", 0)
	viper.SetDefault("logger.path", "./logs/bloghive.log")
	viper.SetDefault("logger.max_size", 16)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.compress", false)
	viper.SetDefault("logger.console", true)

	viper.SetDefault("localcache.size", 1024)

	viper.SetDefault("cors.frontend_path", "http://localhost:3000")

	viper.SetDefault("service.timeout", 3)
	viper.SetDefault("service.rps", 100)

	viper.SetDefault("service.token.access_token_expire_duration", 86400)
	viper.SetDefault("service.token.refresh_token_expire_duration", 864000)
	viper.SetDefault("service.token.secret", "bloghive-dev-secret")

	viper.SetDefault("service.blog.content_max_length", 256)
	viper.SetDefault("service.blog.read_dedup_time", 3600) // count one read per viewer per hour

	// trending score engine
	viper.SetDefault("service.trending.like_weight", 3)
	viper.SetDefault("service.trending.comment_weight", 5)
	viper.SetDefault("service.trending.share_weight", 4)
	viper.SetDefault("service.trending.read_weight", 1)
	viper.SetDefault("service.trending.half_life_days", 3)
	viper.SetDefault("service.trending.time_window_days", 7)
	viper.SetDefault("service.trending.velocity_bonus", 0.1)
	viper.SetDefault("service.trending.min_score_threshold", 0.1)
	viper.SetDefault("service.trending.refresh_interval", 900)  // RecomputeAll cadence, seconds
	viper.SetDefault("service.trending.recompute_timeout", 300) // wall-clock bound on one batch run
	viper.SetDefault("service.trending.score_pool_size", 32)    // async score refresh pool

	viper.SetDefault("service.hot_spot.refresh_time", 60)
	viper.SetDefault("service.hot_spot.size_for_blog", 32)
	viper.SetDefault("service.hot_spot.view_flush_time", 120)

	viper.SetConfigFile(confPath)

	if err := viper.ReadInConfig(); err != nil {
		panic(err.Error())
	}
}
