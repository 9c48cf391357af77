package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"hotel-booking/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// resolveMySQLDSN builds the DSN from DATABASE_URL (raw DSN passthrough)
// or from the individual DB_* variables.
func resolveMySQLDSN() string {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		return raw
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%s", envOrDefault("DB_HOST", "127.0.0.1"), envOrDefault("DB_PORT", "3306"))
	cfg.DBName = envOrDefault("DB_NAME", "hotel_booking")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// ConnectDatabase opens the store (mysql by default, sqlite when
// DB_DRIVER=sqlite), runs migrations and seeds reference data.
func ConnectDatabase() error {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{Logger: newGormLogger()}

	switch driver := envOrDefault("DB_DRIVER", "mysql"); driver {
	case "sqlite":
		path := envOrDefault("SQLITE_PATH", "hotel_booking.db")
		db, err = gorm.Open(sqlite.Open(path), gormCfg)
	case "mysql":
		db, err = gorm.Open(mysql.Open(resolveMySQLDSN()), gormCfg)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.RoomCategory{},
		&models.Room{},
		&models.RoomImage{},
		&models.Booking{},
	)
}
