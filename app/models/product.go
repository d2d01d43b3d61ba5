package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	VariantTypeSquare   = "SQUARE"
	VariantTypeWide     = "WIDE"
	VariantTypePortrait = "PORTRAIT"

	LicensePersonal   = "personal"
	LicenseCommercial = "commercial"
)

// Product is a licensable digital image offered in the catalog.
type Product struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(200);not null" json:"name" validate:"required,min=3,max=200"`
	Description string           `gorm:"type:text;not null" json:"description" validate:"required"`
	ImageURL    string           `gorm:"type:varchar(500);not null" json:"image_url" validate:"required,url,max=500"`
	Variants    []ProductVariant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"variants" validate:"required,min=1,dive"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// ProductVariant is a purchasable size/license configuration with its own price.
type ProductVariant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type" validate:"oneof=SQUARE WIDE PORTRAIT"`
	License   string    `gorm:"type:varchar(20);not null" json:"license" validate:"oneof=personal commercial"`
	Price     float64   `gorm:"not null" json:"price" validate:"gt=0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Product) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// FindVariant returns the variant matching type and license, or nil.
func (p *Product) FindVariant(variantType, license string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].Type == variantType && p.Variants[i].License == license {
			return &p.Variants[i]
		}
	}
	return nil
}
