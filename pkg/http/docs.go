package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

// the document is maintained by hand, keep it in sync with Setup()
//
//go:embed openapi.json
var openAPIDocument []byte

// APIDocs serves the OpenAPI description of the JSON API.
func (rs *RestfulServer) APIDocs(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", openAPIDocument)
}
