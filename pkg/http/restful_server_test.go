package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	_ "assetvault.xyz/asset-warranty-service/pkg/testing"
	"assetvault.xyz/asset-warranty-service/pkg/vault/mocks"

	"assetvault.xyz/asset-warranty-service/pkg/common"
	"assetvault.xyz/asset-warranty-service/pkg/db"
	"assetvault.xyz/asset-warranty-service/pkg/models"
	"assetvault.xyz/asset-warranty-service/pkg/vault"
)

func setupTestServer() *RestfulServer {
	vaultObj := vault.Vault{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	vaultObj.WithServices(vault.ServiceOpts{
		Asset:    vaultObj.GetIAsset(),
		Warranty: vaultObj.GetIWarranty(),
	})

	rs := &RestfulServer{
		Server: gin.Default(),
		Vault:  &vaultObj,
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = vault.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func createTestAsset(t *testing.T, rs *RestfulServer, category string, value float64) models.Asset {
	t.Helper()

	w := doJSON(rs, http.MethodPost, "/api/assets", CreateAssetRequest{
		Name:         "iPhone 15 Pro",
		Category:     category,
		PurchaseDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Value:        value,
		Description:  "Apple smartphone purchased from Apple Store",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var asset models.Asset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &asset))
	require.NotEmpty(t, asset.ID)
	return asset
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPIDocs(t *testing.T) {
	rs := setupTestServer()

	w := doJSON(rs, http.MethodGet, "/api-docs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.0", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok, "document should carry a paths object")
	for _, path := range []string{"/api/assets", "/api/assets/{id}", "/api/warranty-quotes", "/api/warranty-quotes/asset/{assetId}"} {
		assert.Contains(t, paths, path)
	}
}

func TestAssetLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	created := createTestAsset(t, rs, "Electronics", 1200)
	purchaseDate := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, created.PurchaseDate.Equal(purchaseDate))
	assert.False(t, created.CreatedAt.IsZero())

	// fetch it back
	w := doJSON(rs, http.MethodGet, "/api/assets/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var fetched models.Asset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Name, fetched.Name)

	// partial update changes only the supplied field
	w = doJSON(rs, http.MethodPut, "/api/assets/"+created.ID, map[string]any{"value": 2500})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Asset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 2500.0, updated.Value)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Category, updated.Category)
	assert.True(t, updated.PurchaseDate.Equal(created.PurchaseDate))

	// delete, then the id is gone
	w = doJSON(rs, http.MethodDelete, "/api/assets/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Asset deleted successfully"}`, w.Body.String())

	w = doJSON(rs, http.MethodGet, "/api/assets/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errBody ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, http.StatusNotFound, errBody.StatusCode)
	assert.Equal(t, fmt.Sprintf("Asset with ID %s not found", created.ID), errBody.Message)
	assert.Equal(t, "Not Found", errBody.Error)
}

func TestGetAllAssets(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	created := createTestAsset(t, rs, "Furniture", 800)

	w := doJSON(rs, http.MethodGet, "/api/assets", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var assets []models.Asset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assets))

	var found bool
	for _, asset := range assets {
		if asset.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCreateAsset_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	// empty payload should be rejected with the fixed error body shape
	req := httptest.NewRequest("POST", "/api/assets", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errBody ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, http.StatusBadRequest, errBody.StatusCode)
	assert.Equal(t, "Bad Request", errBody.Error)
	assert.NotEmpty(t, errBody.Message)
}

func TestUpdateAsset_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, http.MethodPut, "/api/assets/"+uuid.NewString(), map[string]any{"name": "renamed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errBody ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "Asset with given id not found", errBody.Message)
	assert.Equal(t, "Not Found", errBody.Error)
}

func TestDeleteAsset_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, http.MethodDelete, "/api/assets/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errBody ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "Asset with given id not found", errBody.Message)
	assert.Equal(t, "Not Found", errBody.Error)
}

func TestGenerateQuote(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	asset := createTestAsset(t, rs, "Electronics", 1000)

	w := doJSON(rs, http.MethodPost, "/api/warranty-quotes", WarrantyQuoteRequest{AssetId: asset.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var quote models.WarrantyQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.NotEmpty(t, quote.ID)
	assert.Equal(t, asset.ID, quote.AssetID)
	assert.Equal(t, 20.0, quote.QuoteAmount)
	assert.Equal(t, "AssetGuard Insurance", quote.ProviderName)
	assert.True(t, quote.ValidUntil.Equal(quote.CreatedAt.AddDate(0, 0, 30)))
}

func TestGenerateQuote_TwiceProducesTwoQuotes(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	asset := createTestAsset(t, rs, "Watches", 500)

	first := doJSON(rs, http.MethodPost, "/api/warranty-quotes", WarrantyQuoteRequest{AssetId: asset.ID})
	require.Equal(t, http.StatusCreated, first.Code)
	second := doJSON(rs, http.MethodPost, "/api/warranty-quotes", WarrantyQuoteRequest{AssetId: asset.ID})
	require.Equal(t, http.StatusCreated, second.Code)

	w := doJSON(rs, http.MethodGet, "/api/warranty-quotes/asset/"+asset.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var quotes []models.WarrantyQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quotes))
	assert.Len(t, quotes, 2)
	assert.NotEqual(t, quotes[0].ID, quotes[1].ID)
}

func TestGetAllQuotes_IncludesAsset(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	asset := createTestAsset(t, rs, "Books", 200)

	w := doJSON(rs, http.MethodPost, "/api/warranty-quotes", WarrantyQuoteRequest{AssetId: asset.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	var generated models.WarrantyQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generated))
	assert.Equal(t, 200*0.025, generated.QuoteAmount) // default rate

	w = doJSON(rs, http.MethodGet, "/api/warranty-quotes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var quotes []models.WarrantyQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quotes))

	var found bool
	for _, quote := range quotes {
		if quote.ID == generated.ID {
			found = true
			require.NotNil(t, quote.Asset)
			assert.Equal(t, asset.ID, quote.Asset.ID)
		}
	}
	assert.True(t, found)
}

func TestGenerateQuote_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs := setupTestServer()
		// empty payload should be rejected
		req := httptest.NewRequest("POST", "/api/warranty-quotes", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer()
		missingID := uuid.NewString()
		w := doJSON(rs, http.MethodPost, "/api/warranty-quotes", WarrantyQuoteRequest{AssetId: missingID})
		assert.Equal(t, http.StatusNotFound, w.Code)

		var errBody ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Equal(t, fmt.Sprintf("Asset with ID %s not found", missingID), errBody.Message)
		assert.Equal(t, "Not Found", errBody.Error)
	}

	{
		rs := setupTestServer()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIWarranty := mocks.NewMockIWarranty(ctrl)
		rs.Vault.Warranty = mockIWarranty
		mockIWarranty.EXPECT().
			GetAllQuotes().
			Return(nil, vault.InternalError("Failed to fetch all warranty quotes")).
			Times(1)

		w := doJSON(rs, http.MethodGet, "/api/warranty-quotes", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var errBody ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Equal(t, "Failed to fetch all warranty quotes", errBody.Message)
		assert.Equal(t, "Internal Server Error", errBody.Error)
	}
}

func TestUnclassifiedErrorDefaultsTo500(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIAsset := mocks.NewMockIAsset(ctrl)
	rs.Vault.Asset = mockIAsset
	mockIAsset.EXPECT().
		GetAllAssets().
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, http.MethodGet, "/api/assets", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var errBody ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, http.StatusInternalServerError, errBody.StatusCode)
	assert.Equal(t, "Internal server error", errBody.Message)
	assert.Equal(t, "Internal Server Error", errBody.Error)
}

func setupTestServerWithLimiter(limiter *vault.RateLimiterStore) *RestfulServer {
	vaultObj := vault.Vault{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	vaultObj.WithServices(vault.ServiceOpts{
		Asset:    vaultObj.GetIAsset(),
		Warranty: vaultObj.GetIWarranty(),
	})

	rs := &RestfulServer{
		Server:           gin.Default(),
		Vault:            &vaultObj,
		RateLimiterStore: limiter,
	}

	rs.Setup()

	return rs
}

func TestClientLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(vault.NewRateLimiterStore(2, 2))

	// Simulate 3 requests in quick succession — only 2 should be allowed
	for i := 0; i < 3; i++ {
		w := doJSON(rs, http.MethodGet, "/api/assets", nil)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// an override re-admits the client
	w := doJSON(rs, http.MethodPost, "/api/limiter", LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	w = doJSON(rs, http.MethodGet, "/api/assets", nil)
	require.Equal(t, http.StatusOK, w.Code, "request after override should be allowed")
}

func TestClientLimiter_DeniesAll(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(vault.NewRateLimiterStore(0, 0))

	{
		w := doJSON(rs, http.MethodGet, "/api/assets", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		w := doJSON(rs, http.MethodPost, "/api/warranty-quotes", WarrantyQuoteRequest{AssetId: uuid.NewString()})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs := setupTestServerWithLimiter(vault.NewRateLimiterStore(2, 2))
		// empty payload should be rejected
		req := httptest.NewRequest("POST", "/api/limiter", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// without limiter store the override is accepted but has no effect
		rs := setupTestServer()
		w := doJSON(rs, http.MethodPost, "/api/limiter", LimiterRequest{Rate: 2, Burst: 2})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(rs, http.MethodGet, "/api/assets", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
