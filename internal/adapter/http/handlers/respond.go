package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vickyalvandob/task/internal/adapter/http/middleware"
	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/pkg/apierrors"
)

// respondError maps a service error onto the API error envelope. Anything
// that is neither a validation nor an ownership failure is a storage
// failure: it is logged and reported without detail.
func respondError(c *gin.Context, err error, invalidKey, notFoundKey, failKey, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(http.StatusBadRequest, invalidKey, lang, verr.Fields),
		)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, notFoundKey, lang),
		)
	default:
		fields = append(fields, zap.Uint64("user_id", middleware.GetUserID(c)), zap.Error(err))
		zap.L().Error(logMsg, fields...)
		_ = c.Error(err)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func badRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, apierrors.MsgInvalidID)
		return 0, false
	}
	return id, true
}
