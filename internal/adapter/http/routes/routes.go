package routes

import (
	"log"
	"strconv"

	_ "github.com/Abelv-Engenharia/abelv-integra-sub009/docs" // This will be auto-generated
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/http/handlers"
	repository2 "github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/persistence/repository"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/infrastructure/database"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase"

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
	store := repository2.NewDynamoSnapshotStore(ddb)

	osRepo := repository2.NewServiceOrderSnapshotRepository(store)
	laborRepo := repository2.NewLaborHistorySnapshotRepository(store)

	osUseCase := usecase.NewServiceOrderUseCase(osRepo)
	laborUseCase := usecase.NewLaborHistoryUseCase(laborRepo)

	osHandler := handlers.NewServiceOrderHandler(osUseCase)
	laborHandler := handlers.NewLaborHistoryHandler(laborUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, osHandler)
	addLaborHistoryRoutes(v1, laborHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
