package postgres

import (
	"github.com/rs/zerolog/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/auralabs/aura/internal/config"
)

type Service struct {
	db *gorm.DB
}

func NewService() *Service {
	dsn := config.GetDatabaseURL()

	if dsn == "" {
		log.Warn().Msg("Postgres service not configured - DATABASE_URL missing")
		return nil
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to establish Postgres connection")
		return nil
	}

	return &Service{db: db}
}

// DB returns the underlying gorm handle
func (s *Service) DB() *gorm.DB {
	return s.db
}

// Close releases the underlying connection pool
func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
