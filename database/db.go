package database

import (
	_ "embed"
	"errors"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"echo-journal/config"
	"echo-journal/database/model"

	"github.com/pelletier/go-toml/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

//go:embed publishers.toml
var publisherSeed []byte

func initModels() error {
	models := []any{
		&model.Article{},
		&model.Publisher{},
		&model.User{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initPublishers seeds the publishers table from the embedded TOML file
// when the table is empty, so a fresh install has something to publish under.
func initPublishers() error {
	empty, err := isTableEmpty("publishers")
	if err != nil {
		log.Printf("Error checking if publishers table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	var seed struct {
		Publishers []model.Publisher `toml:"publishers"`
	}
	if err := toml.Unmarshal(publisherSeed, &seed); err != nil {
		return err
	}
	if len(seed.Publishers) == 0 {
		return nil
	}
	return db.Create(&seed.Publishers).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initPublishers(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKey reports whether err came from a unique-index violation.
// The sqlite driver does not always translate to gorm.ErrDuplicatedKey,
// so the raw constraint message is checked as well.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func Checkpoint() error {
	// Update WAL
	err := db.Exec("PRAGMA wal_checkpoint;").Error
	if err != nil {
		return err
	}
	return nil
}
