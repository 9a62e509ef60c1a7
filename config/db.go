package config

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const defaultDSN = "root:root@tcp(127.0.0.1:3306)/railway_concession?charset=utf8mb4&parseTime=True&loc=Local"

// ConnectDatabase opens the MySQL connection. A failure here is not fatal:
// the caller runs the app in degraded mode with the file-backed user store.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
