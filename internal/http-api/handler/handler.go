package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
)

const requestTimeout = 5 * time.Second

const ndjsonContentType = "application/x-ndjson"

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// writeError maps repository and validation failures onto status codes;
// anything else is a store-side failure surfaced unchanged.
func writeError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func wantsNDJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), ndjsonContentType)
}

// streamNDJSON writes the collection as a newline-delimited sequence instead
// of a materialized array.
func streamNDJSON[T any](c *gin.Context, items []T) {
	c.Header("Content-Type", ndjsonContentType)
	c.Status(http.StatusOK)
	enc := json.NewEncoder(c.Writer)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return
		}
	}
}
