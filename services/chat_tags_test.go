package services

import (
	"testing"

	"wabiz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatTags_VIPScenario(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	chat, _, err := CreateOrGetChat(database, CreateChatInput{AccountID: account.ID, ContactNumber: "+555"})
	require.NoError(t, err)
	tag := createTag(t, database, 5, account.ID, "VIP")

	link, err := AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: "+555", AccountID: account.ID, TagID: tag.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ChatTagKey{ChatID: chat.ID, TagID: 5, AccountID: account.ID}, link.Key())

	tags, err := ListChatTags(database, chat.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, tag.Key(), tags[0].Key())
	assert.Equal(t, "VIP", tags[0].Name)

	require.NoError(t, DeleteTag(database, tag.Key()))

	tags, err = ListChatTags(database, chat.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestAssignTag_DuplicateIsConflict(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	chat, _, err := CreateOrGetChat(database, CreateChatInput{AccountID: account.ID, ContactNumber: "+555"})
	require.NoError(t, err)
	tag := createTag(t, database, 5, account.ID, "VIP")
	key := models.ChatTagKey{ChatID: chat.ID, TagID: tag.ID, AccountID: account.ID}

	_, err = AssignTag(database, key)
	require.NoError(t, err)

	_, err = AssignTag(database, key)
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	_, err = AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: "+555", AccountID: account.ID, TagID: tag.ID})
	assert.True(t, IsConflict(err))

	assert.Equal(t, 1, countRows(t, database, &models.ChatTag{}))
}

func TestChatTag_PrimaryKeyRejectsDuplicates(t *testing.T) {
	database := newTestDB(t)
	link := models.NewChatTag(models.ChatTagKey{ChatID: 1, TagID: 2, AccountID: 3})

	require.NoError(t, database.Create(&link).Error)
	dup := models.NewChatTag(link.Key())
	err := database.Create(&dup).Error

	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}

func TestAssignTag_DeletedTagIsNotFound(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	chat, _, err := CreateOrGetChat(database, CreateChatInput{AccountID: account.ID, ContactNumber: "+555"})
	require.NoError(t, err)
	tag := createTag(t, database, 5, account.ID, "VIP")
	require.NoError(t, DeleteTag(database, tag.Key()))

	_, err = AssignTag(database, models.ChatTagKey{ChatID: chat.ID, TagID: tag.ID, AccountID: account.ID})
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, countRows(t, database, &models.ChatTag{}))
}

func TestAssignTag_AccountMustMatch(t *testing.T) {
	database := newTestDB(t)
	a := createAcme(t, database)
	b := createAcme(t, database)
	chatA, _, err := CreateOrGetChat(database, CreateChatInput{AccountID: a.ID, ContactNumber: "+555"})
	require.NoError(t, err)
	createTag(t, database, 5, b.ID, "VIP")

	// chat da conta A com tag da conta B
	_, err = AssignTag(database, models.ChatTagKey{ChatID: chatA.ID, TagID: 5, AccountID: b.ID})
	assert.True(t, IsNotFound(err))

	// tag 5 não existe na conta A
	_, err = AssignTag(database, models.ChatTagKey{ChatID: chatA.ID, TagID: 5, AccountID: a.ID})
	assert.True(t, IsNotFound(err))

	assert.Equal(t, 0, countRows(t, database, &models.ChatTag{}))
}

func TestAssignTag_ChatMustExist(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	createTag(t, database, 5, account.ID, "VIP")

	_, err := AssignTag(database, models.ChatTagKey{ChatID: 10, TagID: 5, AccountID: account.ID})
	assert.True(t, IsNotFound(err))
}

func TestAssignTagByNumber_CreatesChat(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	createTag(t, database, 5, account.ID, "VIP")

	link, err := AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: "+555", AccountID: account.ID, TagID: 5})
	require.NoError(t, err)

	chat, err := FindChatByNumber(database, "+555", account.ID)
	require.NoError(t, err)
	assert.Equal(t, chat.ID, link.ChatID)
}

func TestAssignTagByNumber_MissingTagRollsBackChat(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)

	_, err := AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: "+555", AccountID: account.ID, TagID: 5})
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, countRows(t, database, &models.ChatHeader{}))
}

func TestRemoveTag(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	chat, _, err := CreateOrGetChat(database, CreateChatInput{AccountID: account.ID, ContactNumber: "+555"})
	require.NoError(t, err)
	createTag(t, database, 5, account.ID, "VIP")
	key := models.ChatTagKey{ChatID: chat.ID, TagID: 5, AccountID: account.ID}

	err = RemoveTag(database, key)
	assert.True(t, IsNotFound(err), "never created")

	_, err = AssignTag(database, key)
	require.NoError(t, err)

	require.NoError(t, RemoveTag(database, key))
	err = RemoveTag(database, key)
	assert.True(t, IsNotFound(err), "removed twice")
}

func TestRemoveTagByNumber(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	createTag(t, database, 5, account.ID, "VIP")
	_, err := AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: "+555", AccountID: account.ID, TagID: 5})
	require.NoError(t, err)

	require.NoError(t, RemoveTagByNumber(database, "+555", 5, account.ID))
	assert.Equal(t, 0, countRows(t, database, &models.ChatTag{}))

	err = RemoveTagByNumber(database, "+555", 5, account.ID)
	assert.True(t, IsNotFound(err))
}

func TestRemoveTagByNumber_UnknownChat(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)

	err := RemoveTagByNumber(database, "+404", 5, account.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), msgChatNotFound)
	assert.Equal(t, 0, countRows(t, database, &models.ChatHeader{}))
}

func TestListChatTags_ChatMustExist(t *testing.T) {
	database := newTestDB(t)

	_, err := ListChatTags(database, 1)
	assert.True(t, IsNotFound(err))
}

func TestListChatTagsByNumber(t *testing.T) {
	database := newTestDB(t)
	account := createAcme(t, database)
	createTag(t, database, 7, account.ID, "b")
	createTag(t, database, 3, account.ID, "a")

	result, err := ListChatTagsByNumber(database, "+555", account.ID)
	require.NoError(t, err)
	assert.Nil(t, result.ChatID)
	assert.NotNil(t, result.Tags)
	assert.Empty(t, result.Tags)

	for _, id := range []int64{7, 3} {
		_, err := AssignTagByNumber(database, AssignTagByNumberInput{ContactNumber: "+555", AccountID: account.ID, TagID: id})
		require.NoError(t, err)
	}

	result, err = ListChatTagsByNumber(database, "+555", account.ID)
	require.NoError(t, err)
	require.NotNil(t, result.ChatID)
	require.Len(t, result.Tags, 2)
	assert.Equal(t, int64(3), result.Tags[0].ID)
	assert.Equal(t, int64(7), result.Tags[1].ID)
}
