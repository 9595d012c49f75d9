package db

import (
	"time"

	"catalog/internal/config"
	"catalog/internal/domain/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// SQLログはlogrusに流す（warn以上）。
func Connect(cfg config.Config, log *logrus.Logger) (*gorm.DB, error) {
	gl := gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	return gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{Logger: gl})
}

// テーブル作成
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.InventorySKU{},
		&model.Product{},
		&model.StockMovement{},
	)
}
