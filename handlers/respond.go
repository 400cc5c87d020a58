package handlers

import (
	"errors"
	"net/http"

	"shutterbook/middleware"
	"shutterbook/services/scheduling"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// photographerFromContext retrieves the authenticated photographer ID set by
// JWTAuthPhotographerMiddleware, aborting with 401 when it is missing.
func photographerFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.PhotographerIDKey)
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "Photographer not authenticated")
		return "", false
	}
	photographerID, ok := value.(string)
	if !ok || photographerID == "" {
		utils.JSONError(c, http.StatusInternalServerError, "Invalid photographer ID in context")
		return "", false
	}
	return photographerID, true
}

// respondDomainError maps scheduling errors to the HTTP status codes of the
// error taxonomy: validation 400, not found 404, ownership 403, conflict
// 409; everything else is a 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case scheduling.IsValidationError(err), errors.Is(err, scheduling.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrServiceNotFound), errors.Is(err, scheduling.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, scheduling.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, scheduling.ErrSlotConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.GetLogger().Error("unexpected scheduling error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}
