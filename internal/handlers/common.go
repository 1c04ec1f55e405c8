package handlers

import (
	"errors"
	"net/http"

	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/pkg/gateway"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondError maps the gateway error taxonomy onto storefront responses.
// Validation failures carry per-field messages for inline display.
func respondError(c *gin.Context, action string, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, gateway.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gateway.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, gateway.ErrTransport):
		status = http.StatusBadGateway
	}

	resp := ErrorResponse{
		Error:   action,
		Message: err.Error(),
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		resp.Message = apiErr.Message
		resp.Fields = apiErr.FieldMessages()
	}
	c.JSON(status, resp)
}

// tokenSource returns the bearer source for the current request: the session
// when one is resolved, anonymous otherwise.
func tokenSource(c *gin.Context) gateway.TokenSource {
	if sess := middleware.GetSession(c); sess != nil {
		return sess
	}
	return gateway.Anonymous
}
