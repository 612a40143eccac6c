package routes

import (
	_ "hyperion_estimating/docs" // This will be auto-generated
	"hyperion_estimating/internal/adapter/http/handlers"
	repository2 "hyperion_estimating/internal/adapter/persistence/repository"
	"hyperion_estimating/internal/infrastructure/database"
	"hyperion_estimating/internal/usecase"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	componentRepo := repository2.NewComponentDynamoRepository(ddb)
	assemblyRepo := repository2.NewAssemblyDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(componentRepo)
	assemblyUseCase := usecase.NewAssemblyUseCase(assemblyRepo, componentRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, componentRepo, assemblyRepo, projectRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	reportUseCase := usecase.NewReportUseCase(estimateRepo, componentRepo, assemblyRepo, projectRepo)

	componentHandler := handlers.NewComponentHandler(catalogUseCase)
	assemblyHandler := handlers.NewAssemblyHandler(assemblyUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, componentHandler)
	addAssemblyRoutes(v1, assemblyHandler)
	addEstimateRoutes(v1, estimateHandler, projectHandler)
	addReportRoutes(v1, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
