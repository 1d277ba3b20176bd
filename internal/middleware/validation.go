package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentmanagement/internal/app/models/dto"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
)

// BindJSON binds the request body into obj. On failure it writes a 400 failure
// envelope describing the problem and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, apperrors.NewBadRequestError(dto.ValidationMessage(err)))
		return false
	}
	return true
}
