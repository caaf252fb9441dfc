package http

import (
	"assetvault.xyz/asset-warranty-service/pkg/vault"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RestfulServer struct {
	Server           *gin.Engine
	Vault            *vault.Vault
	RateLimiterStore *vault.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(c *gin.Context) bool {
	limiter := rs.GetLimiter(c.ClientIP())
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) Setup() {
	// the API backs a browser frontend
	rs.Server.Use(cors.Default())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/api-docs", rs.APIDocs)

	assets := rs.Server.Group("/api/assets")
	{
		assets.POST("", rs.CreateAsset)
		assets.GET("", rs.GetAllAssets)
		assets.GET("/:id", rs.GetAssetByID)
		assets.PUT("/:id", rs.UpdateAsset)
		assets.DELETE("/:id", rs.DeleteAsset)
	}

	quotes := rs.Server.Group("/api/warranty-quotes")
	{
		quotes.POST("", rs.GenerateQuote)
		quotes.GET("", rs.GetAllQuotes)
		quotes.GET("/asset/:assetId", rs.GetQuotesByAssetID)
	}

	rs.Server.POST("/api/limiter", rs.PostLimiter)
}
