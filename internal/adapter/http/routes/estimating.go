package routes

import (
	"hyperion_estimating/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathComponents = "/components"
	PathAssemblies = "/assemblies"
	PathEstimates  = "/estimates"
	PathProjects   = "/projects"
	PathReports    = "/reports"
)

func addCatalogRoutes(rg *gin.RouterGroup, componentHandler *handlers.ComponentHandler) {
	components := rg.Group(PathComponents)
	{
		components.POST("", componentHandler.CreateComponent)
		components.GET("", componentHandler.ListComponents)
		components.GET("/:id", componentHandler.GetComponent)
		components.POST("/:id/tiers", componentHandler.AddQualityTier)
		components.GET("/:id/tiers", componentHandler.ListTiers)
	}
}

func addAssemblyRoutes(rg *gin.RouterGroup, assemblyHandler *handlers.AssemblyHandler) {
	assemblies := rg.Group(PathAssemblies)
	{
		assemblies.POST("", assemblyHandler.CreateAssembly)
		assemblies.GET("", assemblyHandler.ListAssemblies)
		assemblies.GET("/:id", assemblyHandler.GetAssembly)
		assemblies.GET("/:id/totals", assemblyHandler.GetTotals)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, projectHandler *handlers.ProjectHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.POST("/:id/lines", estimateHandler.AppendLines)
		estimates.POST("/:id/assemblies", estimateHandler.AppendAssemblyLines)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.GET("/:id/estimates", estimateHandler.ListByProject)
		projects.POST("/:id/actual-costs", projectHandler.RecordActualCost)
		projects.POST("/:id/change-orders", projectHandler.AddChangeOrder)
		projects.PATCH("/:id/change-orders/:change_order_id/approve", projectHandler.ApproveChangeOrder)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/estimates/:id/categories", reportHandler.CategoryBreakdown)
		reports.GET("/variance", reportHandler.Variance)
		reports.GET("/regions", reportHandler.Regions)
		reports.GET("/trend", reportHandler.Trend)
	}
}
