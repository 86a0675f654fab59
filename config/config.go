package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/internal/logging"
	"github.com/rmacedo/hoje-e-onde/internal/models"
	"github.com/rmacedo/hoje-e-onde/internal/stores"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBDriver:   os.Getenv("DB_DRIVER"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPath:     os.Getenv("DB_PATH"),
	}, nil
}

// InitDatabase opens the configured database (postgres by default, sqlite
// with DB_DRIVER=sqlite), migrates the schema and reconciles seed data.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DBDriver == "sqlite" {
		path := cfg.DBPath
		if path == "" {
			path = "hoje_e_onde.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	} else {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.Event{}, &models.Vote{}, &models.SavedEvent{}, &models.EventType{})
	if err != nil {
		return nil, err
	}

	seedEventTypes(db)

	if err := stores.ReconcileSeeds(db, stores.CurrentDate()); err != nil {
		logging.L().Error("seed reconciliation failed", zap.Error(err))
	}

	return db, nil
}

func seedEventTypes(db *gorm.DB) {
	types := []models.EventType{
		{Name: "Festa"},
		{Name: "Evento Cultural/Social"},
		{Name: "Promoção"},
		{Name: "Oportunidade"},
		{Name: "Outro"},
	}

	for _, eventType := range types {
		var existing models.EventType
		result := db.Where("name = ?", eventType.Name).First(&existing)
		if result.Error != nil {
			db.Create(&eventType)
		}
	}
}
