package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"assetvault.xyz/asset-warranty-service/pkg/common"
	"assetvault.xyz/asset-warranty-service/pkg/db"
	vaultHttp "assetvault.xyz/asset-warranty-service/pkg/http"
	"assetvault.xyz/asset-warranty-service/pkg/vault"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	vaultDbType := os.Getenv(common.EnvKeyVaultDBType)
	switch vaultDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown VAULT_DB_TYPE: " + vaultDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyVaultHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyVaultDefaultRate), 64); err != nil {
		log.Fatal("Invalid VAULT_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyVaultDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid VAULT_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	vaultCore := vault.Vault{
		Db: *dbInstance,
	}
	vaultCore.WithServices(vault.ServiceOpts{
		Asset:    vaultCore.GetIAsset(),
		Warranty: vaultCore.GetIWarranty(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &vaultHttp.RestfulServer{
		Server:           gin.Default(),
		Vault:            &vaultCore,
		RateLimiterStore: vault.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
