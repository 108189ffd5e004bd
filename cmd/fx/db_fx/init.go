package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"devmatter/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	infra.AutoMigrate(db)
	return db
}
