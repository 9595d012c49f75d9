package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"catalog/internal/middleware"
	"catalog/internal/response"
	"catalog/internal/usecase"
)

func writeError(c echo.Context, log logrus.FieldLogger, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			log.WithError(err).WithField("request_id", middleware.RequestIDFrom(c)).Error("unexpected error")
		}
		return response.Error(c, he.Status, he.Message)
	}

	//500
	log.WithError(err).WithField("request_id", middleware.RequestIDFrom(c)).Error("unexpected error")
	return response.Error(c, http.StatusInternalServerError, "Internal server error")
}

type quantityRequest struct {
	Quantity int64 `json:"quantity"`
}
