package routes

import (
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/os"
	PathLaborHistory  = "/hh-historicos"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, osHandler *handlers.ServiceOrderHandler) {
	os := rg.Group(PathServiceOrders)
	{
		os.POST("", osHandler.CreateOS)
		os.GET("", osHandler.ListOS)
		os.DELETE("", osHandler.ClearAll)
		os.GET("/:id", osHandler.GetOS)

		// Lifecycle transitions.
		os.POST("/:id/avancar", osHandler.AvancarFase)
		os.PATCH("/:id/planejamento", osHandler.UpdatePlanejamento)
		os.PATCH("/:id/aprovar-planejamento", osHandler.AprovarPlanejamento)
		os.PATCH("/:id/hh", osHandler.UpdateHH)
		os.PATCH("/:id/status", osHandler.UpdateStatus)
		os.POST("/:id/replanejamento", osHandler.Replanejamento)
		os.PATCH("/:id/concluir", osHandler.Concluir)
		os.POST("/:id/fechamento", osHandler.Fechamento)
		os.PATCH("/:id/aceitar-fechamento", osHandler.AceitarFechamento)
		os.PATCH("/:id/rejeitar-fechamento", osHandler.RejeitarFechamento)
		os.PATCH("/:id/cancelar", osHandler.Cancelar)
	}
}

func addLaborHistoryRoutes(rg *gin.RouterGroup, laborHandler *handlers.LaborHistoryHandler) {
	hh := rg.Group(PathLaborHistory)
	{
		hh.POST("", laborHandler.Add)
		hh.POST("/lote", laborHandler.AddBatch)
		hh.GET("", laborHandler.List)
		hh.DELETE("", laborHandler.ClearAll)
	}
}
