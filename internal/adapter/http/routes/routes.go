package routes

import (
	"context"
	"log"
	"os"

	_ "mostruario_digital/docs" // This will be auto-generated
	"mostruario_digital/internal/adapter/http/handlers"
	repository2 "mostruario_digital/internal/adapter/persistence/repository"
	"mostruario_digital/internal/infrastructure/pdf"
	"mostruario_digital/internal/infrastructure/workbook"
	"mostruario_digital/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	DefaultPort = "8080"

	// DefaultWorkbookPath is the showroom catalog spreadsheet shipped with
	// the deployment; override with WORKBOOK_PATH.
	DefaultWorkbookPath = "data/CATALAGO MOSTRUARIO DIGITAL.xlsx"
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", DefaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	workbookPath := getenvDefault("WORKBOOK_PATH", DefaultWorkbookPath)

	catalogRepo := repository2.NewCatalogMemoryRepository()
	loader := workbook.NewExcelizeLoader()
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, loader, workbookPath)

	// The workbook is the only I/O boundary: without a first index there is
	// no catalog to serve, so abort the process. Later reloads degrade
	// gracefully instead.
	info, err := catalogUseCase.Reload(context.Background())
	if err != nil {
		log.Fatalf("Failed to load catalog workbook %q: %v", workbookPath, err)
	}
	log.Printf("catalog loaded: build=%s products=%d suppliers=%d", info.BuildID, info.Products, info.Suppliers)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	exportHandler := handlers.NewExportHandler(catalogUseCase, pdf.NewFinishSheetExporter())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
