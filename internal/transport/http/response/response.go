package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"burgerhouse/internal/service"
)

// Status-coded JSON helpers. Errors are {"message": ...} except validation
// failures, which carry a field map: {"errors": {"name": "..."}}.

func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

func Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func BadRequest(c *gin.Context, msg string) { Message(c, http.StatusBadRequest, msg) }

func Unauthorized(c *gin.Context, msg string) { Message(c, http.StatusUnauthorized, msg) }

func Forbidden(c *gin.Context, msg string) { Message(c, http.StatusForbidden, msg) }

func NotFound(c *gin.Context, msg string) { Message(c, http.StatusNotFound, msg) }

func Conflict(c *gin.Context, msg string) { Message(c, http.StatusConflict, msg) }

func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

// FromError translates service errors into their response status. Unknown
// errors become an opaque 500; nothing retries.
func FromError(c *gin.Context, err error) {
	var (
		verr *service.ValidationError
		nerr *service.NotFoundError
		cerr *service.ConflictError
		berr *service.BadRequestError
	)
	switch {
	case errors.As(err, &verr):
		ValidationFailed(c, verr.Fields)
	case errors.As(err, &nerr):
		NotFound(c, nerr.Msg)
	case errors.As(err, &cerr):
		Conflict(c, cerr.Msg)
	case errors.As(err, &berr):
		BadRequest(c, berr.Msg)
	default:
		_ = c.Error(err)
		Message(c, http.StatusInternalServerError, "internal error")
	}
}
