package services

import (
	"testing"

	"wabiz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTag(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)

	color := " #ff0000 "
	tag, err := CreateTag(database, CreateTagInput{ID: 5, AccountID: account.ID, Name: "VIP", Color: &color})
	require.NoError(t, err)

	assert.Equal(t, models.TagKey{ID: 5, AccountID: account.ID}, tag.Key())
	assert.Equal(t, "VIP", tag.Name)
	require.NotNil(t, tag.Color)
	assert.Equal(t, "#ff0000", *tag.Color)
	assert.False(t, tag.Deleted)
}

func TestCreateTag_ColorIsOptional(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)

	tag := createTag(t, database, 1, account.ID, "lead")

	stored, err := GetTag(database, tag.Key())
	require.NoError(t, err)
	assert.Nil(t, stored.Color)
}

func TestCreateTag_AccountMustExist(t *testing.T) {
	database := newTestDB(t)

	_, err := CreateTag(database, CreateTagInput{ID: 1, AccountID: 42, Name: "VIP"})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, countRows(t, database, &models.Tag{}))
}

func TestCreateTag_DeletedAccountIsRejected(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	require.NoError(t, database.Model(&models.Account{}).Where("id = ?", account.ID).UpdateColumn("deleted", true).Error)

	_, err := CreateTag(database, CreateTagInput{ID: 1, AccountID: account.ID, Name: "VIP"})
	assert.True(t, IsNotFound(err))
}

func TestCreateTag_IDIsScopedByAccount(t *testing.T) {
	database := newTestDB(t)
	a := createAcme(t, database)
	b := createAcme(t, database)

	createTag(t, database, 5, a.ID, "VIP")
	createTag(t, database, 5, b.ID, "Outro VIP")

	_, err := CreateTag(database, CreateTagInput{ID: 5, AccountID: a.ID, Name: "Duplicada"})
	assert.True(t, IsConflict(err))

	tagA, err := GetTag(database, models.TagKey{ID: 5, AccountID: a.ID})
	require.NoError(t, err)
	tagB, err := GetTag(database, models.TagKey{ID: 5, AccountID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, "VIP", tagA.Name)
	assert.Equal(t, "Outro VIP", tagB.Name)
}

func TestCreateTag_Validation(t *testing.T) {
	database := newTestDB(t)

	_, err := CreateTag(database, CreateTagInput{ID: 0, AccountID: 1, Name: "x"})
	assert.True(t, IsValidation(err))
	_, err = CreateTag(database, CreateTagInput{ID: 1, AccountID: 1, Name: ""})
	assert.True(t, IsValidation(err))
}

func TestListTagsByAccount_IncludesSoftDeleted(t *testing.T) {
	database := newTestDB(t)
	a := createAcme(t, database)
	b := createAcme(t, database)
	createTag(t, database, 2, a.ID, "b")
	createTag(t, database, 1, a.ID, "a")
	createTag(t, database, 1, b.ID, "other")

	require.NoError(t, DeleteTag(database, models.TagKey{ID: 2, AccountID: a.ID}))

	tags, err := ListTagsByAccount(database, a.ID)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, int64(1), tags[0].ID)
	assert.Equal(t, int64(2), tags[1].ID)
	assert.True(t, tags[1].Deleted)
}

func TestDeleteTag_CascadesAssociations(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	tag := createTag(t, database, 5, account.ID, "VIP")
	other := createTag(t, database, 6, account.ID, "lead")

	for _, number := range []string{"+555", "+556"} {
		_, err := AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: number, AccountID: account.ID, TagID: tag.ID})
		require.NoError(t, err)
	}
	_, err := AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: "+555", AccountID: account.ID, TagID: other.ID})
	require.NoError(t, err)
	require.Equal(t, 3, countRows(t, database, &models.ChatTag{}))

	require.NoError(t, DeleteTag(database, tag.Key()))

	var remaining []models.ChatTag
	require.NoError(t, database.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].TagID)

	stored, err := GetTag(database, tag.Key())
	require.NoError(t, err)
	assert.True(t, stored.Deleted)
}

func TestDeleteTag_NotFound(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	createTag(t, database, 5, account.ID, "VIP")

	err := DeleteTag(database, models.TagKey{ID: 5, AccountID: account.ID + 1})
	assert.True(t, IsNotFound(err))
}

func TestGetTag_NotFound(t *testing.T) {
	database := newTestDB(t)

	_, err := GetTag(database, models.TagKey{ID: 1, AccountID: 1})
	assert.True(t, IsNotFound(err))
}
