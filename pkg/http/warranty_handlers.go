package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type WarrantyQuoteRequest struct {
	AssetId string `json:"assetId"`
}

var warrantyQuoteRequestSchema = z.Struct(z.Shape{
	"assetId": z.String().Min(1).Required(),
})

func (rs *RestfulServer) GenerateQuote(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req WarrantyQuoteRequest
	if err := warrantyQuoteRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		renderBadRequest(c, fmt.Sprintf("Invalid quote payload: %v", err))
		return
	}

	quote, err := rs.Vault.Warranty.GenerateQuote(req.AssetId)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quote)
}

func (rs *RestfulServer) GetQuotesByAssetID(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	quotes, err := rs.Vault.Warranty.GetQuotesByAssetID(c.Param("assetId"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func (rs *RestfulServer) GetAllQuotes(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	quotes, err := rs.Vault.Warranty.GetAllQuotes()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}
