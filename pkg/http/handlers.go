package http

import (
	"fmt"
	"net/http"
	"time"

	"assetvault.xyz/asset-warranty-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type CreateAssetRequest struct {
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Value        float64   `json:"value"`
	Description  string    `json:"description"`
}

var createAssetRequestSchema = z.Struct(z.Shape{
	"name":         z.String().Min(1).Required(),
	"category":     z.String().Min(1).Required(),
	"purchaseDate": z.Time().Required(),
	"value":        z.Float64().GTE(0).Required(),
	"description":  z.String().Optional(),
})

func (rs *RestfulServer) CreateAsset(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req CreateAssetRequest
	if err := createAssetRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		renderBadRequest(c, fmt.Sprintf("Invalid asset payload: %v", err))
		return
	}

	input := &models.CreateAssetInput{
		Name:         req.Name,
		Category:     req.Category,
		PurchaseDate: req.PurchaseDate,
		Value:        req.Value,
	}
	if req.Description != "" {
		input.Description = &req.Description
	}

	asset, err := rs.Vault.Asset.CreateAsset(input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (rs *RestfulServer) GetAllAssets(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	assets, err := rs.Vault.Asset.GetAllAssets()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (rs *RestfulServer) GetAssetByID(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	asset, err := rs.Vault.Asset.GetAssetByID(c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// UpdateAssetRequest uses pointer fields so an omitted field can be
// told apart from a zero value, zog schemas cannot express that.
type UpdateAssetRequest struct {
	Name         *string    `json:"name"`
	Category     *string    `json:"category"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	Value        *float64   `json:"value"`
	Description  *string    `json:"description"`
}

func (rs *RestfulServer) UpdateAsset(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBadRequest(c, fmt.Sprintf("Invalid asset payload: %v", err))
		return
	}

	asset, err := rs.Vault.Asset.UpdateAsset(c.Param("id"), &models.UpdateAssetInput{
		Name:         req.Name,
		Category:     req.Category,
		PurchaseDate: req.PurchaseDate,
		Value:        req.Value,
		Description:  req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (rs *RestfulServer) DeleteAsset(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if err := rs.Vault.Asset.DeleteAsset(c.Param("id")); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		renderBadRequest(c, fmt.Sprintf("Invalid limiter payload: %v", err))
		return
	}

	rs.SetLimiter(c.ClientIP(), req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
