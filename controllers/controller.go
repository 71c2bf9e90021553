package controllers

import (
	"log"
	"net/http"

	"wabiz/services"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondMessage é a resposta das operações que não devolvem o registro.
func RespondMessage(c *gin.Context, msg string, extra gin.H) {
	body := gin.H{"message": msg}
	for k, v := range extra {
		body[k] = v
	}
	RespondSuccess(c, body)
}

// RespondServiceError is the failing strategy: every typed error becomes an
// HTTP error with the matching status.
func RespondServiceError(c *gin.Context, err error) {
	if e, ok := services.AsError(err); ok {
		switch e.Kind {
		case services.KindNotFound:
			RespondError(c, e.Message, http.StatusNotFound)
		case services.KindConflict:
			RespondError(c, e.Message, http.StatusConflict)
		case services.KindValidation:
			RespondError(c, e.Message, http.StatusBadRequest)
		default:
			RespondError(c, e.Message, http.StatusInternalServerError)
		}
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, "erro interno", http.StatusInternalServerError)
}

// RespondLookup is the sentinel strategy used by detail endpoints: a missing
// record is a 200 with found=false instead of an error.
func RespondLookup(c *gin.Context, key string, value any, err error) {
	if services.IsNotFound(err) {
		e, _ := services.AsError(err)
		RespondSuccess(c, gin.H{"found": false, "message": e.Message})
		return
	}
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"found": true, key: value})
}
