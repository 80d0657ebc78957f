package httperr

import (
	"net/http"

	"promo-code-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int  `json:"-"`
	Success bool `json:"success"`
	Error   struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, kind, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = kind
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithEngineError maps the lifecycle engine's error taxonomy onto a
// status and a generic message. Backend error text is kept in c.Errors only.
func AbortWithEngineError(c *gin.Context, err error) {
	kind := shared.Kind(err)
	switch kind {
	case "invalid_input":
		AbortWithError(c, http.StatusBadRequest, err, kind, "Invalid request", err.Error())
	case "not_found":
		AbortWithError(c, http.StatusNotFound, err, kind, "Promo code not found", nil)
	case "generation_exhausted":
		AbortWithError(c, http.StatusInternalServerError, err, kind, "Could not generate a unique promo code", nil)
	case "storage_unavailable":
		AbortWithError(c, http.StatusServiceUnavailable, err, kind, "Storage temporarily unavailable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "internal", "Internal error", nil)
	}
}
