package response

import (
	"github.com/labstack/echo/v4"

	"catalog/internal/validator"
)

// 成功時 {"success":true,"data":...}
type Success struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// 失敗時 {"success":false,"error":{...}}
type Failure struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
	Path    string                 `json:"path,omitempty"`
}

func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Success{Success: true, Data: data})
}

func Error(c echo.Context, status int, msg string) error {
	return c.JSON(status, Failure{Error: ErrorDetail{Message: msg}})
}

func ValidationFailed(c echo.Context, status int, errs []validator.FieldError) error {
	return c.JSON(status, Failure{Error: ErrorDetail{Message: "Validation failed", Errors: errs}})
}

func NotFound(c echo.Context, status int, path string) error {
	return c.JSON(status, Failure{Error: ErrorDetail{Message: "Resource not found", Path: path}})
}
