package http

import (
	"errors"
	"net/http"

	"assetvault.xyz/asset-warranty-service/pkg/vault"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the fixed body shape of every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func statusForKind(kind vault.ErrorKind) int {
	switch kind {
	case vault.KindNotFound:
		return http.StatusNotFound
	case vault.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// renderError translates an already classified outcome into its status
// code, anything unrecognized defaults to 500.
func renderError(c *gin.Context, err error) {
	var se *vault.ServiceError
	if errors.As(err, &se) {
		status := statusForKind(se.Kind)
		c.JSON(status, ErrorResponse{
			StatusCode: status,
			Message:    se.Message,
			Error:      string(se.Kind),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
		Error:      string(vault.KindInternal),
	})
}

func renderBadRequest(c *gin.Context, message string) {
	renderError(c, vault.BadRequestError(message))
}
