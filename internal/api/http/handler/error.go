package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/notekeeper-server/internal/model"
)

// fieldError is a single machine-readable failure message.
type fieldError struct {
	Msg string `json:"msg"`
}

// errorResponse is the failure body shape for every endpoint.
type errorResponse struct {
	Errors []fieldError `json:"errors"`
}

func newErrorResponse(msgs ...string) errorResponse {
	resp := errorResponse{Errors: make([]fieldError, 0, len(msgs))}
	for _, msg := range msgs {
		resp.Errors = append(resp.Errors, fieldError{Msg: msg})
	}
	return resp
}

// handleError maps service errors to HTTP status codes.
// Anything unmapped is a 500 with no detail leaked to the client.
func handleError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, newErrorResponse("Record not found."))
	case errors.Is(err, model.ErrPermissionDenied):
		c.JSON(http.StatusUnauthorized, newErrorResponse("You are not allowed to access this record."))
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, newErrorResponse("E-Mail or Password is incorrect."))
	case errors.Is(err, model.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, newErrorResponse("A user with that email already exists!"))
	case errors.Is(err, model.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, newErrorResponse("Title is required."))
	default:
		c.JSON(http.StatusInternalServerError, newErrorResponse("Internal server error."))
	}
}

// handleBindingError turns gin binding failures into the per-field
// message list clients expect.
func handleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, newErrorResponse("Request body is malformed."))
		return
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, validationMessage(fe))
	}

	c.JSON(http.StatusBadRequest, newErrorResponse(msgs...))
}

func validationMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Email" && fe.Tag() == "required":
		return "E-Mail is required."
	case fe.Field() == "Email" && fe.Tag() == "email":
		return "E-Mail must be a valid email."
	case fe.Field() == "Password" && fe.Tag() == "required":
		return "Password is required."
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password is required and must be at least 8 characters long."
	case fe.Field() == "Title":
		return "Title is required."
	case fe.Field() == "Name":
		return "Name is required."
	case fe.Field() == "UserID":
		return "A grantee user ID is required."
	default:
		return fe.Field() + " is invalid."
	}
}

// invalidID is the response for a path parameter that is not a
// well-formed store key. Returned before any store lookup happens.
func invalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, newErrorResponse("Identifier is not valid."))
}
