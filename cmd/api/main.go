package main

import (
	_ "freight_settlement/docs"
	"freight_settlement/internal/adapter/http/routes"
	"freight_settlement/internal/infrastructure/config"
	"freight_settlement/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Freight Settlement API
// @version         1.0
// @description     Stage payment board and driver payment tickets over the freight back office.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description Opaque operator session token issued by the back office.

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogFile, cfg.LogLevel)
	routes.Run(cfg)
}
