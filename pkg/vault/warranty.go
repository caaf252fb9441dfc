package vault

import (
	"errors"
	"fmt"
	"time"

	"assetvault.xyz/asset-warranty-service/pkg/common"
	"assetvault.xyz/asset-warranty-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// quoteValidityDays is how long a generated quote stays valid.
const quoteValidityDays = 30

func warrantyLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameVaultCore,
		zap.String(common.LoggerFieldVaultCategory, common.LoggerCategoryWarranty),
	)
}

func (v *Vault) generateQuote(assetID string) (*models.WarrantyQuote, error) {
	logger := warrantyLogger()

	var asset models.Asset
	if err := v.Db.Conn.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError(fmt.Sprintf("Asset with ID %s not found", assetID))
		}
		logger.Error("Failed to fetch asset for quote", zap.String("asset_id", assetID), zap.Error(err))
		return nil, Classify(err, "Failed to generate warranty quote")
	}

	rate := RateForCategory(asset.Category)
	now := time.Now()

	quote := models.WarrantyQuote{
		AssetID:      asset.ID,
		QuoteAmount:  asset.Value * rate,
		ProviderName: ProviderName,
		CreatedAt:    now,
		ValidUntil:   now.AddDate(0, 0, quoteValidityDays),
	}

	logger.Info("Generating quote", zap.String("asset_id", assetID), zap.Float64("rate", rate))

	if err := v.Db.Conn.Create(&quote).Error; err != nil {
		logger.Error("Failed to store quote", zap.String("asset_id", assetID), zap.Error(err))
		return nil, Classify(err, "Failed to generate warranty quote")
	}

	logger.Info("Quote stored", zap.String("quote_id", quote.ID), zap.Float64("quote_amount", quote.QuoteAmount))
	return &quote, nil
}

func (v *Vault) getQuotesByAssetID(assetID string) ([]models.WarrantyQuote, error) {
	var quotes []models.WarrantyQuote
	err := v.Db.Conn.
		Where("asset_id = ?", assetID).
		Find(&quotes).Error
	if err != nil {
		warrantyLogger().Error("Failed to fetch quotes for asset", zap.String("asset_id", assetID), zap.Error(err))
		return nil, Classify(err, "Failed to fetch warranty quotes for asset")
	}
	return quotes, nil
}

func (v *Vault) getAllQuotes() ([]models.WarrantyQuote, error) {
	var quotes []models.WarrantyQuote
	if err := v.Db.Conn.Preload("Asset").Find(&quotes).Error; err != nil {
		warrantyLogger().Error("Failed to fetch all quotes", zap.Error(err))
		return nil, Classify(err, "Failed to fetch all warranty quotes")
	}
	return quotes, nil
}

type IWarrantyImpl struct {
	vault *Vault
}

func (iw *IWarrantyImpl) GenerateQuote(assetID string) (*models.WarrantyQuote, error) {
	return iw.vault.generateQuote(assetID)
}

func (iw *IWarrantyImpl) GetQuotesByAssetID(assetID string) ([]models.WarrantyQuote, error) {
	return iw.vault.getQuotesByAssetID(assetID)
}

func (iw *IWarrantyImpl) GetAllQuotes() ([]models.WarrantyQuote, error) {
	return iw.vault.getAllQuotes()
}

func (v *Vault) GetIWarranty() IWarranty {
	return &IWarrantyImpl{vault: v}
}
