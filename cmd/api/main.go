package main

import (
	_ "casas_prefab/docs"
	"casas_prefab/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Casas Prefab Quotation API
// @version         1.0
// @description     Catalog prices, quote configurator and exchange rates for the prefab housing site.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Required on /exchange-rates/sync and /exchange-rates/cache when ADMIN_API_KEY is set.

func main() {
	routes.Run()
}
