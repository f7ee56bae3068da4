package contact

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Saver is the storage side of the endpoint
type Saver interface {
	Save(ctx context.Context, r Request) (Submission, error)
}

// Handler serves POST submissions: 400 on a bad field, 500 when storage fails
func Handler(store Saver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		sub, err := store.Save(c.Request.Context(), req)
		switch {
		case errors.Is(err, ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid name"})
		case errors.Is(err, ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email"})
		case errors.Is(err, ErrInvalidMessage):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message"})
		case err != nil:
			log.Printf("contact: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		default:
			log.Printf("contact: stored submission %s", sub.ID)
			c.JSON(http.StatusOK, gin.H{"message": "Message received", "id": sub.ID})
		}
	}
}
