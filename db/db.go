package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"wabiz/config"
	"wabiz/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const memoryDSN = ":memory:"

// Connect abre conexão com DB (sqlite3 por padrão) e, se configurado, faz o automigrate.
func Connect(conf config.Configuration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if conf.IsSqlite() {
		log.Println("Utilizando conexão com o sqlite3...")
		path := conf.DbName
		if path != memoryDSN {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		db, err = gorm.Open("sqlite3", path)
		if err == nil && path == memoryDSN {
			// cada conexão nova teria um banco vazio
			db.DB().SetMaxOpenConns(1)
		}
		if err == nil {
			err = db.Exec("PRAGMA foreign_keys = ON").Error
		}
	} else {
		log.Println("Utilizando conexão com o postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	}

	if err != nil {
		log.Println("Got error when connect database, the error is: " + err.Error())
		return nil, err
	}

	db.LogMode(conf.DbLog)

	if conf.AutoMigrate {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the four tables. Foreign keys are only added on
// postgres: sqlite cannot ALTER TABLE ADD CONSTRAINT, so there the services
// enforce them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Account{},
		&models.ChatHeader{},
		&models.Tag{},
		&models.ChatTag{},
	).Error; err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if db.Dialect().GetName() != "postgres" {
		return nil
	}

	fks := []struct {
		model any
		field string
		dest  string
	}{
		{&models.ChatHeader{}, "account_id", "accounts(id)"},
		{&models.Tag{}, "account_id", "accounts(id)"},
		{&models.ChatTag{}, "chat_id", "chat_headers(id)"},
		{&models.ChatTag{}, "tag_id, account_id", "tags(id, account_id)"},
	}
	for _, fk := range fks {
		scope := db.NewScope(fk.model)
		name := scope.Dialect().BuildKeyName(scope.TableName(), fk.field, fk.dest, "foreign")
		if scope.Dialect().HasForeignKey(scope.TableName(), name) {
			continue
		}
		if err := db.Model(fk.model).AddForeignKey(fk.field, fk.dest, "RESTRICT", "RESTRICT").Error; err != nil {
			return fmt.Errorf("failed to add foreign key %s: %w", name, err)
		}
	}
	return nil
}
