package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/notify"
	"inkwell/cmd/web/services"
)

// respondError converts the failure taxonomy into one HTTP response and one
// user-visible notification: validation blocks with 400, a missing post is
// 404, a server-reported failure surfaces its own message with 502, anything
// else (transport) is 500. fallback is the message shown when the error
// carries nothing user-readable.
func respondError(c *gin.Context, notifier *notify.Center, err error, fallback string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		notifier.Error(validationErr.Message)
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	if errors.Is(err, contentclient.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var apiErr *contentclient.APIError
	if errors.As(err, &apiErr) {
		notifier.Error(apiErr.Message)
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
		return
	}

	notifier.Error(fallback)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
