package services

import (
	"testing"

	"wabiz/config"
	"wabiz/db"
	"wabiz/models"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	var cfg config.Configuration
	cfg.Database = "sqlite3"
	cfg.DbName = ":memory:"
	cfg.AutoMigrate = true

	database, err := db.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func acmeInput() CreateAccountInput {
	return CreateAccountInput{
		Name:              "Acme",
		MessagingInstance: "inst-1",
		CorporateNumber:   "+100",
		PersonalNumber:    "+200",
		PersonalName:      "Bob",
	}
}

func createAcme(t *testing.T, database *gorm.DB) models.Account {
	t.Helper()
	account, err := CreateAccount(database, acmeInput())
	require.NoError(t, err)
	return account
}

func createTag(t *testing.T, database *gorm.DB, id, accountID int64, name string) models.Tag {
	t.Helper()
	tag, err := CreateTag(database, CreateTagInput{ID: id, AccountID: accountID, Name: name})
	require.NoError(t, err)
	return tag
}

func countRows(t *testing.T, database *gorm.DB, model any) int {
	t.Helper()
	var n int
	require.NoError(t, database.Model(model).Count(&n).Error)
	return n
}
