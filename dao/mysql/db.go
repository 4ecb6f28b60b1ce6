package mysql

import (
	"fmt"

	"bloghive/models"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func InitMySQL() {
	dbHost := viper.Get("mysql.host")
	dbPort := viper.GetInt("mysql.port")
	userName := viper.Get("mysql.username")
	password := viper.Get("mysql.password")
	database := viper.Get("mysql.database")
	charset := viper.Get("mysql.charset")
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local", userName, password, dbHost, dbPort, database, charset)
	debug := viper.GetBool("mysql.debug")
	var err error
	if debug {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Info)})
	} else {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		panic(fmt.Sprintf("mysql: %s", err.Error()))
	}
	initTables()
}

func initTables() {
	db.AutoMigrate(&models.User{})
	db.AutoMigrate(&models.Category{})
	db.AutoMigrate(&models.Blog{})
	db.AutoMigrate(&models.BlogLike{})
	db.AutoMigrate(&models.BlogComment{})
	db.AutoMigrate(&models.Bookmark{})
}

func getUseDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

func GetDB() *gorm.DB {
	return db
}
