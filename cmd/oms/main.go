// Package main OMS Simulator API
//
// A mock Order Management System for testing integrations. Orders are kept
// in a single JSON collection on disk and exposed over REST.
//
//	@title			OMS Simulator API
//	@version		1.0
//	@description	A mock OMS API for testing integrations
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8000
//	@BasePath	/
//	@schemes	http
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "oms/docs/swagger"
	"oms/internal/orders/adapters"
	"oms/internal/orders/application"
	"oms/internal/orders/infrastructure"
	"oms/internal/orders/ports"
	"oms/pkg/config"
	"oms/pkg/events"
	"oms/pkg/logger"
	"oms/pkg/middleware"
	"oms/pkg/rabbitmq"
	pkgtls "oms/pkg/tls"
)

func main() {
	// Load configuration
	cfg := config.Load("oms")

	// Initialize logger
	log := logger.New("oms", cfg.LogLevel)
	defer log.Sync()

	log.Info("starting OMS service")

	// Initialize the file-backed order store. The data file path is
	// injected here; nothing else touches the backing storage.
	store := adapters.NewFileOrderStore(cfg.DataFile)
	log.Info("order store at " + cfg.DataFile)

	// Connect to RabbitMQ. Events are best-effort: the service runs
	// without a broker.
	var publisher ports.EventPublisher
	rabbitConn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
	if err != nil {
		log.Warn("failed to connect to RabbitMQ, events will be disabled: " + err.Error())
	} else {
		defer rabbitConn.Close()

		pub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangeOrders, log)
		if err != nil {
			log.Warn("failed to create publisher: " + err.Error())
		} else {
			publisher = adapters.NewRabbitMQPublisher(pub, log)
		}
	}

	// Initialize use case
	useCase := application.NewOrderUseCase(store, publisher, log)

	// Setup Gin router
	httpHandler := infrastructure.NewHTTPHandler(useCase)
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	httpHandler.RegisterRoutes(router)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "OMS Simulator"})
	})

	// Root redirect to Swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	if cfg.TLSEnabled {
		tlsConfig, err := pkgtls.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatal("failed to load TLS config: " + err.Error())
		}
		server.TLSConfig = tlsConfig
	}

	go func() {
		var err error
		if cfg.TLSEnabled {
			log.Info("HTTPS server listening on :" + cfg.HTTPPort)
			err = server.ListenAndServeTLS("", "")
		} else {
			log.Info("HTTP server listening on :" + cfg.HTTPPort)
			log.Info("Swagger UI: http://localhost:" + cfg.HTTPPort + "/swagger/index.html")
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown error: " + err.Error())
	}

	log.Info("server stopped")
}
