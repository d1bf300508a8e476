package main

import (
	"context"
	"os"

	_ "solar_portal/docs"
)

// @title           Solar Portal API
// @version         1.0
// @description     Solar marketplace: homeowner projects, installer quotes, signed deals and platform commissions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller id, resolved to a role by the user directory.

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
