package controllers

import (
	"wabiz/models"
	"wabiz/services"

	"github.com/gin-gonic/gin"
)

// POST /api/tags
func CreateTag(c *gin.Context) {
	var in services.CreateTagInput
	if !BindJSON(c, &in) {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	tag, err := services.CreateTag(db, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, tag)
}

// GET /api/tags/account/:account_id
func GetTagsByAccount(c *gin.Context) {
	accountID, ok := ParamID(c, "account_id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	tags, err := services.ListTagsByAccount(db, accountID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, tags)
}

func tagKey(c *gin.Context) (models.TagKey, bool) {
	tagID, ok := ParamID(c, "tag_id")
	if !ok {
		return models.TagKey{}, false
	}
	accountID, ok := ParamID(c, "account_id")
	if !ok {
		return models.TagKey{}, false
	}
	return models.TagKey{ID: tagID, AccountID: accountID}, true
}

// GET /api/tags/detail/:tag_id/:account_id
// Não encontrado responde 200 com {"found": false}.
func GetTagDetail(c *gin.Context) {
	key, ok := tagKey(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	tag, err := services.GetTag(db, key)
	RespondLookup(c, "tag", tag, err)
}

// DELETE /api/tags/:tag_id/:account_id
func DeleteTag(c *gin.Context) {
	key, ok := tagKey(c)
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	if err := services.DeleteTag(db, key); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondMessage(c, "etiqueta removida com sucesso", nil)
}
