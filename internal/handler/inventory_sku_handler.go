package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"catalog/internal/middleware"
	"catalog/internal/response"
	"catalog/internal/usecase"
	"catalog/internal/validator"
)

// /api/inventory のAPI
type InventorySKUHandler struct {
	uc  *usecase.InventorySKUUsecase
	log logrus.FieldLogger
}

func NewInventorySKUHandler(uc *usecase.InventorySKUUsecase, log logrus.FieldLogger) *InventorySKUHandler {
	return &InventorySKUHandler{uc: uc, log: log}
}

func (h *InventorySKUHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/inventory")

	g.POST("/skus", h.create, middleware.ValidateBody(validator.CreateInventorySKU()))
	g.GET("/skus", h.list)
	g.GET("/skus/code/:skuCode", h.getByCode)
	g.GET("/skus/:id", h.get)
	g.DELETE("/skus/:id", h.delete)
	g.GET("/skus/:id/movements", h.movements)

	//在庫操作
	qty := middleware.ValidateBody(validator.StockQuantity())
	g.POST("/skus/:id/add", h.stockOp(h.uc.AddStock), qty)
	g.POST("/skus/:id/remove", h.stockOp(h.uc.RemoveStock), qty)
	g.POST("/skus/:id/reserve", h.stockOp(h.uc.ReserveStock), qty)
	g.POST("/skus/:id/release", h.stockOp(h.uc.ReleaseReservation), qty)
}

func (h *InventorySKUHandler) create(c echo.Context) error {
	var in usecase.CreateSKUInput
	if err := middleware.BindPayload(c, &in); err != nil {
		return writeError(c, h.log, err)
	}

	out, err := h.uc.CreateSKU(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusCreated, out)
}

func (h *InventorySKUHandler) list(c echo.Context) error {
	out, err := h.uc.ListSKUs(c.Request().Context(), usecase.SKUListFilter{
		WarehouseID: c.QueryParam("warehouseId"),
		ProductID:   c.QueryParam("productId"),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, out)
}

func (h *InventorySKUHandler) get(c echo.Context) error {
	out, err := h.uc.GetSKU(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, out)
}

func (h *InventorySKUHandler) getByCode(c echo.Context) error {
	out, err := h.uc.GetSKUByCode(c.Request().Context(), c.Param("skuCode"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, out)
}

func (h *InventorySKUHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteSKU(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InventorySKUHandler) movements(c echo.Context) error {
	out, err := h.uc.ListMovements(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, http.StatusOK, out)
}

type skuStockFunc func(ctx context.Context, id string, qty int64) (usecase.InventorySKUOutput, error)

func (h *InventorySKUHandler) stockOp(op skuStockFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req quantityRequest
		if err := middleware.BindPayload(c, &req); err != nil {
			return writeError(c, h.log, err)
		}

		out, err := op(c.Request().Context(), c.Param("id"), req.Quantity)
		if err != nil {
			return writeError(c, h.log, err)
		}
		return response.OK(c, http.StatusOK, out)
	}
}
