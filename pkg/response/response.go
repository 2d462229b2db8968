package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"mission-report-srv/pkg/discord"
	"mission-report-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Accepted writes a 202 response wrapping data.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Error renders err. HTTPErrors are rendered with their own status, anything
// else is a 500 and gets reported to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// ValidationFailed writes a 400 response listing invalid fields.
func ValidationFailed(c *gin.Context, fields []errors.ValidationError) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   "Validation failed",
		Errors:    fields,
	})
}

// PanicError renders a recovered panic as a 500 and reports the stack trace.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic: %v\n```%s```", recovered, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

func reportBug(ctx context.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), message)
	}()
}
