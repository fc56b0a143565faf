package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "nitronflow/internal/errors"
	"nitronflow/internal/logger"
	"nitronflow/internal/models"
)

// ErrorResponse mirrors the JSON error envelope for API documentation.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// parseLedgerKind parses the :kind path parameter into a LedgerKind.
func parseLedgerKind(c *gin.Context) (models.LedgerKind, error) {
	kind := models.LedgerKind(c.Param("kind"))
	switch kind {
	case models.LedgerKindPersonal, models.LedgerKindBusiness:
		return kind, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrUnknownLedger, "Unknown ledger kind: "+c.Param("kind"))
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
