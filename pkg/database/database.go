package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/miniblog/config"
    "github.com/d60-Lab/miniblog/internal/model"
)

// InitDB 按配置打开数据库并迁移表结构；默认 sqlite，可切 postgres
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.Database.Driver {
    case "sqlite", "":
        dialector = sqlite.Open(cfg.Database.DSN)
    case "postgres":
        dialector = postgres.Open(cfg.Database.DSN)
    default:
        return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
    }

    db, err := gorm.Open(dialector, &gorm.Config{
        Logger: gormlogger.Default.LogMode(gormlogger.Silent),
    })
    if err != nil {
        return nil, fmt.Errorf("open database: %w", err)
    }

    if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Reaction{}); err != nil {
        return nil, fmt.Errorf("migrate: %w", err)
    }
    return db, nil
}
