package db

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/platform/envutil"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/types"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New connects to Postgres when POSTGRES_HOST is set, and otherwise falls
// back to a local sqlite file so the service runs without infrastructure.
func New(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	var (
		conn gorm.Dialector
	)
	if strings.TrimSpace(os.Getenv("POSTGRES_HOST")) != "" {
		host := envutil.Str("POSTGRES_HOST", "localhost")
		port := envutil.Str("POSTGRES_PORT", "5432")
		user := envutil.Str("POSTGRES_USER", "postgres")
		password := envutil.Str("POSTGRES_PASSWORD", "")
		name := envutil.Str("POSTGRES_NAME", "retodia")
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		serviceLog.Info("Connecting to Postgres...", "host", host, "db", name)
		conn = postgres.Open(dsn)
	} else {
		path := envutil.Str("SQLITE_PATH", "retodia.db")
		serviceLog.Info("POSTGRES_HOST not set, using sqlite", "path", path)
		conn = sqlite.Open(path)
	}

	gdb, err := gorm.Open(conn, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &Service{db: gdb, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.FractalSession{},
		&types.ChatLog{},
		&types.WelcomeContent{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
