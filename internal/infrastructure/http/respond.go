// Package http exposes the application over a Gin HTTP server.
package http

import (
	stderrors "errors"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipehub/backend/pkg/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors to HTTP statuses. Anything that is not
// an AppError is treated as internal and its details stay out of the body.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status := errors.StatusOf(err)
	code := errors.GetCode(err)

	if status == nethttp.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(status, errorBody{Code: "INTERNAL", Message: "internal error"})
		return
	}

	message := "request failed"
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(status, errorBody{Code: string(code), Message: message})
}
