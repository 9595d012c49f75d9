package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"catalog/internal/handler"
	"catalog/internal/usecase"
)

func RegisterRoutes(e *echo.Echo, store Store, log logrus.FieldLogger, reg *prometheus.Registry) {
	//usecaseに渡す部品
	ids := usecase.UUIDGenerator{}
	clock := usecase.SystemClock{}

	skuUC := usecase.NewInventorySKUUsecase(store.SKUs, store.Movements, store.Tx, ids, clock)
	productUC := usecase.NewProductUsecase(store.Products, ids, clock)

	handler.NewHealthHandler(nil).RegisterRoutes(e)
	handler.NewInventorySKUHandler(skuUC, log).RegisterRoutes(e)
	handler.NewProductHandler(productUC, log).RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
}
