package database

import (
	"context"
	"fmt"
	"time"

	"employee-management/internal/config"
	"employee-management/internal/models"
	"employee-management/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var retryDelay = 2 * time.Second

// Dialector picks the gorm driver for the configured database.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSNString()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSNString()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects to the database, retrying up to cfg.ConnectAttempts times.
// The caller owns the handle and must release it with Close.
func Open(cfg config.DatabaseConfig, gormCfg *gorm.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	if gormCfg == nil {
		gormCfg = &gorm.Config{}
	}

	attempts := max(cfg.ConnectAttempts, 1)
	var db *gorm.DB
	for i := 1; i <= attempts; i++ {
		log.Debug().Str("driver", cfg.Driver).Int("attempt", i).Int("max", attempts).Msg("connecting to database")

		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}

		log.Warn().Err(err).Int("attempt", i).Msg("failed to connect to database")
		if i < attempts {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database after %d attempts: %w", attempts, err)
	}

	log.Debug().Str("driver", cfg.Driver).Msg("connected to database")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Project{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed creates the default admin account and, when enabled, a few demo
// employees. Existing data is left alone.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if err := ensureAdmin(ctx, repository.NewUserRepository(db), cfg.Admin); err != nil {
		return err
	}
	if cfg.App.SeedDemoData {
		if err := seedEmployees(ctx, repository.NewEmployeeRepository(db)); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(ctx context.Context, users *repository.UserRepository, admin config.AdminConfig) error {
	count, err := users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := models.User{
		Username:     admin.Username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := users.Insert(ctx, &user); err != nil {
		return err
	}

	log.Info().Str("username", admin.Username).Msg("created default admin user")
	return nil
}

var demoEmployees = []models.Employee{
	{Name: "anita sharma", Designation: "Software Engineer", Email: "anita.sharma@example.com"},
	{Name: "babu raj", Designation: "Business Analyst", Email: "babu.raj@example.com"},
	{Name: "chitra devi", Designation: "QA Engineer", Email: "chitra.devi@example.com"},
	{Name: "dinesh kumar", Designation: "Tech Lead", Email: "dinesh.kumar@example.com"},
}

func seedEmployees(ctx context.Context, employees *repository.EmployeeRepository) error {
	count, err := employees.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, e := range demoEmployees {
		if _, err := employees.Insert(ctx, &e); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(demoEmployees)).Msg("seeded demo employees")
	return nil
}
