package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "freight_settlement/docs" // swag generated
	"freight_settlement/internal/adapter/http/handlers"
	"freight_settlement/internal/adapter/http/middleware"
	"freight_settlement/internal/adapter/persistence/repository"
	"freight_settlement/internal/infrastructure/config"
	"freight_settlement/internal/infrastructure/database"
	"freight_settlement/internal/infrastructure/legacyapi"
	"freight_settlement/internal/infrastructure/session"
	"freight_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT or SIGTERM.
func Run(cfg config.Config) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessions := getRoutes(router, cfg)
	defer sessions.Close()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("[http][server] listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("[http][server] failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("[http][server] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("[http][server] shutdown error")
	}
}

func getRoutes(router *gin.Engine, cfg config.Config) *session.Manager {
	ddb := database.ConnectDynamoDB(cfg)
	api := legacyapi.NewClient(cfg)

	changeSetRepo := repository.NewChangeSetDynamoRepository(ddb, cfg)
	draftRepo := repository.NewTicketDraftDynamoRepository(ddb, cfg)
	authorizationRepo := repository.NewTicketAuthorizationDynamoRepository(ddb, cfg)

	stageUseCase := usecase.NewStagePaymentUseCase(api, changeSetRepo)
	ticketUseCase := usecase.NewPaymentTicketUseCase(api, draftRepo, authorizationRepo)

	sessions := session.NewManager(api, cfg.PermissionRefreshInterval, cfg.LegacyAPITimeout)

	stageHandler := handlers.NewStagePaymentHandler(stageUseCase)
	ticketHandler := handlers.NewPaymentTicketHandler(ticketUseCase)
	sessionHandler := handlers.NewSessionHandler(sessions)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.DELETE("/session", sessionHandler.Logout)

	// Rotas autenticadas
	authed := v1.Group("", middleware.RequireSession(sessions))
	addSettlementRoutes(authed, stageHandler, ticketHandler)

	return sessions
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("[http][server] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
