package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/kamau-dev/shopApp/store"
)

// handleStoreError maps store errors onto HTTP status codes.
func handleStoreError(c *gin.Context, err error) {
	var (
		invalid    *store.InvalidArgument
		fk         *store.ForeignKeyViolation
		unique     *store.UniqueConstraintViolation
		conflict   *store.ReferentialConflict
		outOfStock *store.InsufficientStock
	)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.As(err, &invalid), errors.As(err, &fk), errors.As(err, &outOfStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &unique), errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Report query timed out"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
