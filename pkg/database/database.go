package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store database. When DATABASE_URL is set a postgres
// connection is used; otherwise an in-process sqlite store (":memory:" by
// default, so all state is discarded on exit). STORE_DSN can point the
// sqlite store at a file instead.
func Connect() *gorm.DB {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // Disables implicit prepared statements for pooled connections
		}), &gorm.Config{
			Logger:      newLogger,
			PrepareStmt: false,
		})
		if err != nil {
			log.Fatal("Failed to connect to database. \n", err)
		}

		// Connection pooling setup
		sqlDB, _ := db.DB()
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		log.Println("Database connection established (postgres)")
		return db
	}

	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		log.Fatal("Failed to open store database. \n", err)
	}

	// sqlite serializes writers; a single connection keeps the in-memory
	// store visible to every request.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	log.Println("In-process store ready (sqlite)")
	return db
}
