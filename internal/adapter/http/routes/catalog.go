package routes

import (
	"mostruario_digital/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathCatalog  = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, exportHandler *handlers.ExportHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:name", catalogHandler.GetProduct)
		products.GET("/:name/pdf", exportHandler.DownloadFinishSheet)
	}

	rg.GET("/brands", catalogHandler.ListBrands)
	rg.GET("/suppliers", catalogHandler.ListSuppliers)

	catalog := rg.Group(PathCatalog)
	{
		catalog.POST("/reload", catalogHandler.ReloadCatalog)
	}
}
