package vault

import (
	"assetvault.xyz/asset-warranty-service/pkg/db"
	"assetvault.xyz/asset-warranty-service/pkg/models"
)

//go:generate mockgen -source=vault.go -destination=mocks/mock_vault.go -package=mocks

type IAsset interface {
	CreateAsset(input *models.CreateAssetInput) (*models.Asset, error)
	GetAllAssets() ([]models.Asset, error)
	GetAssetByID(id string) (*models.Asset, error)
	UpdateAsset(id string, input *models.UpdateAssetInput) (*models.Asset, error)
	DeleteAsset(id string) error
}

type IWarranty interface {
	GenerateQuote(assetID string) (*models.WarrantyQuote, error)
	GetQuotesByAssetID(assetID string) ([]models.WarrantyQuote, error)
	GetAllQuotes() ([]models.WarrantyQuote, error)
}

type Vault struct {
	Db       db.DB
	Asset    IAsset
	Warranty IWarranty
}

type ServiceOpts struct {
	Asset    IAsset
	Warranty IWarranty
}

func (v *Vault) WithServices(opts ServiceOpts) *Vault {
	if opts.Asset != nil {
		v.Asset = opts.Asset
	}
	if opts.Warranty != nil {
		v.Warranty = opts.Warranty
	}
	return v
}
