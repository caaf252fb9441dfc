package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Asset struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Value        float64   `json:"value"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	WarrantyQuotes []WarrantyQuote `gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE" json:"warrantyQuotes,omitempty"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type WarrantyQuote struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	AssetID      string    `gorm:"index" json:"assetId"`
	QuoteAmount  float64   `json:"quoteAmount"`
	ProviderName string    `json:"providerName"`
	ValidUntil   time.Time `json:"validUntil"`
	CreatedAt    time.Time `json:"createdAt"`

	// loaded only for the all-quotes listing, a quote never owns its asset
	Asset *Asset `gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE" json:"asset,omitempty"`
}

func (q *WarrantyQuote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// CreateAssetInput carries the validated fields of a new asset.
type CreateAssetInput struct {
	Name         string
	Category     string
	PurchaseDate time.Time
	Value        float64
	Description  *string
}

// UpdateAssetInput carries a partial asset update. A nil field was not
// supplied and keeps its stored value.
type UpdateAssetInput struct {
	Name         *string
	Category     *string
	PurchaseDate *time.Time
	Value        *float64
	Description  *string
}
