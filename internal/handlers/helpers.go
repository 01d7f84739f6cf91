package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/ids"
	"saheminvest/internal/logger"
	"saheminvest/internal/middleware"
	"saheminvest/internal/models"
	"saheminvest/internal/pagination"
	"saheminvest/internal/services"
)

// getActor builds the authenticated actor from the Gin context.
// Returns ErrUnauthorized if no user is present.
func getActor(c *gin.Context) (services.Actor, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return services.Actor{}, apperrors.ErrUnauthorized
	}
	role, _ := c.Get(middleware.RoleKey)
	r, _ := role.(models.Role)
	return services.Actor{ID: userID, Role: r}, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !ids.IsValid(id) {
		return "", apperrors.WithField(apperrors.ErrInvalidInput, param, "must be a valid id")
	}
	return id, nil
}

// bindPage parses page and page_size query parameters.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return page, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message and field details.
// Otherwise it logs the unexpected error and returns a generic internal error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"kind", appErr.Kind,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		body := gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
		c.JSON(appErr.StatusCode, gin.H{"error": body})
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

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
