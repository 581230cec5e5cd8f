package handler

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sarops/medic-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError writes the error envelope with the HTTP status derived from
// the error code.
func RespondError(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	c.JSON(appErr.HTTPStatus(), NewErrorResponse(appErr.Error()))
}

// BindErrorMessage renders a binding failure, flattening field-level
// validation errors into a readable message.
func BindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fe.Field() + " is required"
		}
		return fe.Field() + " failed validation: " + fe.Tag()
	}
	return err.Error()
}
