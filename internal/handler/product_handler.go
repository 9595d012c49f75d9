package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"catalog/internal/domain/model"
	"catalog/internal/middleware"
	"catalog/internal/response"
	"catalog/internal/usecase"
	"catalog/internal/validator"
)

// /products のAPI
type ProductHandler struct {
	uc  *usecase.ProductUsecase
	log logrus.FieldLogger
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/products")

	g.POST("", h.create, middleware.ValidateBody(validator.CreateProduct()))
	g.GET("", h.list)
	g.GET("/sku/:sku", h.bySKU)
	g.GET("/:id", h.detail)
	g.PATCH("/:id", h.update, middleware.ValidateBody(validator.UpdateProduct()))
	g.DELETE("/:id", h.remove)

	qty := middleware.ValidateBody(validator.ProductStockQuantity())
	g.POST("/:id/decrease-stock", h.stockOp(h.uc.DecreaseStock), qty)
	g.POST("/:id/increase-stock", h.stockOp(h.uc.IncreaseStock), qty)
}

func (h *ProductHandler) create(c echo.Context) error {
	var in usecase.CreateProductInput
	if err := middleware.BindPayload(c, &in); err != nil {
		return writeError(c, h.log, err)
	}

	p, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusCreated, p)
}

// ?category= があればカテゴリで絞る
func (h *ProductHandler) list(c echo.Context) error {
	var (
		items []model.Product
		err   error
	)
	if category := c.QueryParam("category"); category != "" {
		items, err = h.uc.FindByCategory(c.Request().Context(), category)
	} else {
		items, err = h.uc.FindAll(c.Request().Context())
	}
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, p)
}

func (h *ProductHandler) bySKU(c echo.Context) error {
	p, err := h.uc.FindBySKU(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	var in usecase.UpdateProductInput
	if err := middleware.BindPayload(c, &in); err != nil {
		return writeError(c, h.log, err)
	}

	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, p)
}

func (h *ProductHandler) remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type productStockFunc func(ctx context.Context, id string, qty int64) (model.Product, error)

func (h *ProductHandler) stockOp(op productStockFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req quantityRequest
		if err := middleware.BindPayload(c, &req); err != nil {
			return writeError(c, h.log, err)
		}

		p, err := op(c.Request().Context(), c.Param("id"), req.Quantity)
		if err != nil {
			return writeError(c, h.log, err)
		}
		return response.OK(c, http.StatusOK, p)
	}
}
