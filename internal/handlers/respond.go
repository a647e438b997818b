// internal/handlers/respond.go
package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "careers-backend/internal/common/errors"
)

// respondError normalizes any error into the standard error envelope.
func respondError(c *gin.Context, err error) {
	stdErr := apperrors.FromError(err)
	c.JSON(apperrors.HTTPStatus(stdErr.Code), stdErr)
}
