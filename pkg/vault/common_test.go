package vault

import (
	"testing"
	"time"

	"assetvault.xyz/asset-warranty-service/pkg/db"
	"assetvault.xyz/asset-warranty-service/pkg/models"
	"assetvault.xyz/asset-warranty-service/pkg/vault/mocks"
	"go.uber.org/mock/gomock"
)

func GetMockVaultWithMemorySqliteDialector(t *testing.T, useMockIAsset, useMockIWarranty bool) (
	*gomock.Controller,
	*Vault,
	*mocks.MockIAsset,
	*mocks.MockIWarranty,
) {
	ctrl := gomock.NewController(t)

	mockIAsset := mocks.NewMockIAsset(ctrl)
	mockIWarranty := mocks.NewMockIWarranty(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	vaultInstance := &Vault{Db: *dbInstance}

	assetService := vaultInstance.GetIAsset()
	if useMockIAsset {
		assetService = mockIAsset
	}

	warrantyService := vaultInstance.GetIWarranty()
	if useMockIWarranty {
		warrantyService = mockIWarranty
	}

	vaultInstance.WithServices(ServiceOpts{
		Asset:    assetService,
		Warranty: warrantyService,
	})

	return ctrl, vaultInstance, mockIAsset, mockIWarranty
}

func newCreateAssetInput() *models.CreateAssetInput {
	description := "Apple smartphone purchased from Apple Store"
	return &models.CreateAssetInput{
		Name:         "iPhone 15 Pro",
		Category:     "Electronics",
		PurchaseDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Value:        1000,
		Description:  &description,
	}
}
