package vault

import (
	"errors"
	"fmt"

	"assetvault.xyz/asset-warranty-service/pkg/common"
	"assetvault.xyz/asset-warranty-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func assetLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameVaultCore,
		zap.String(common.LoggerFieldVaultCategory, common.LoggerCategoryAsset),
	)
}

func (v *Vault) createAsset(input *models.CreateAssetInput) (*models.Asset, error) {
	logger := assetLogger()

	asset := models.Asset{
		Name:         input.Name,
		Category:     input.Category,
		PurchaseDate: input.PurchaseDate,
		Value:        input.Value,
		Description:  input.Description,
	}

	logger.Info("Received asset", zap.Reflect("asset", asset))

	if err := v.Db.Conn.Create(&asset).Error; err != nil {
		logger.Error("Failed to create asset", zap.Error(err))
		return nil, BadRequestError(err.Error())
	}

	logger.Info("Created asset", zap.String("asset_id", asset.ID))
	return &asset, nil
}

func (v *Vault) getAllAssets() ([]models.Asset, error) {
	var assets []models.Asset
	if err := v.Db.Conn.Preload("WarrantyQuotes").Find(&assets).Error; err != nil {
		assetLogger().Error("Failed to fetch assets", zap.Error(err))
		return nil, Classify(err, "Failed to fetch assets")
	}
	return assets, nil
}

func (v *Vault) getAssetByID(id string) (*models.Asset, error) {
	var asset models.Asset
	err := v.Db.Conn.Preload("WarrantyQuotes").First(&asset, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError(fmt.Sprintf("Asset with ID %s not found", id))
		}
		assetLogger().Error("Failed to fetch asset", zap.String("asset_id", id), zap.Error(err))
		return nil, Classify(err, "Failed to fetch asset")
	}
	return &asset, nil
}

func (v *Vault) updateAsset(id string, input *models.UpdateAssetInput) (*models.Asset, error) {
	logger := assetLogger()

	var asset models.Asset
	if err := v.Db.Conn.First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Asset with given id not found")
		}
		logger.Error("Failed to fetch asset for update", zap.String("asset_id", id), zap.Error(err))
		return nil, Classify(err, "Failed to update asset")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.PurchaseDate != nil {
		updates["purchase_date"] = *input.PurchaseDate
	}
	if input.Value != nil {
		updates["value"] = *input.Value
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	logger.Info("Updating asset", zap.String("asset_id", id), zap.Reflect("updates", updates))

	if len(updates) > 0 {
		if err := v.Db.Conn.Model(&asset).Updates(updates).Error; err != nil {
			logger.Error("Failed to update asset", zap.String("asset_id", id), zap.Error(err))
			return nil, Classify(err, "Failed to update asset")
		}
	}

	var updated models.Asset
	if err := v.Db.Conn.Preload("WarrantyQuotes").First(&updated, "id = ?", id).Error; err != nil {
		logger.Error("Failed to reload updated asset", zap.String("asset_id", id), zap.Error(err))
		return nil, Classify(err, "Failed to update asset")
	}
	return &updated, nil
}

func (v *Vault) deleteAsset(id string) error {
	logger := assetLogger()

	var asset models.Asset
	if err := v.Db.Conn.First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("Asset with given id not found")
		}
		logger.Error("Failed to fetch asset for delete", zap.String("asset_id", id), zap.Error(err))
		return Classify(err, "Failed to delete asset")
	}

	if err := v.Db.Conn.Delete(&asset).Error; err != nil {
		logger.Error("Failed to delete asset", zap.String("asset_id", id), zap.Error(err))
		return Classify(err, "Failed to delete asset")
	}

	logger.Info("Deleted asset", zap.String("asset_id", id))
	return nil
}

type IAssetImpl struct {
	vault *Vault
}

func (ia *IAssetImpl) CreateAsset(input *models.CreateAssetInput) (*models.Asset, error) {
	return ia.vault.createAsset(input)
}

func (ia *IAssetImpl) GetAllAssets() ([]models.Asset, error) {
	return ia.vault.getAllAssets()
}

func (ia *IAssetImpl) GetAssetByID(id string) (*models.Asset, error) {
	return ia.vault.getAssetByID(id)
}

func (ia *IAssetImpl) UpdateAsset(id string, input *models.UpdateAssetInput) (*models.Asset, error) {
	return ia.vault.updateAsset(id, input)
}

func (ia *IAssetImpl) DeleteAsset(id string) error {
	return ia.vault.deleteAsset(id)
}

func (v *Vault) GetIAsset() IAsset {
	return &IAssetImpl{vault: v}
}
