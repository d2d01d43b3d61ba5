package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() *Product {
	return &Product{
		Name:        "Mountain Sunrise",
		Description: "High resolution landscape photograph",
		ImageURL:    "https://cdn.example.com/products/mountain.jpg",
		Variants: []ProductVariant{
			{Type: VariantTypeSquare, License: LicensePersonal, Price: 499.00},
			{Type: VariantTypeSquare, License: LicenseCommercial, Price: 1999.00},
			{Type: VariantTypeWide, License: LicensePersonal, Price: 599.00},
		},
	}
}

func TestProduct_FindVariant(t *testing.T) {
	p := sampleProduct()

	v := p.FindVariant(VariantTypeSquare, LicenseCommercial)
	require.NotNil(t, v)
	assert.Equal(t, 1999.00, v.Price)

	// same type, different license is a different variant
	v = p.FindVariant(VariantTypeSquare, LicensePersonal)
	require.NotNil(t, v)
	assert.Equal(t, 499.00, v.Price)

	assert.Nil(t, p.FindVariant(VariantTypePortrait, LicensePersonal))
	assert.Nil(t, p.FindVariant("BANNER", LicensePersonal))
}

func TestProduct_Validate(t *testing.T) {
	t.Run("Valid product", func(t *testing.T) {
		assert.NoError(t, sampleProduct().Validate())
	})

	t.Run("Missing name", func(t *testing.T) {
		p := sampleProduct()
		p.Name = ""
		assert.Error(t, p.Validate())
	})

	t.Run("No variants", func(t *testing.T) {
		p := sampleProduct()
		p.Variants = nil
		assert.Error(t, p.Validate())
	})

	t.Run("Unknown variant type", func(t *testing.T) {
		p := sampleProduct()
		p.Variants[0].Type = "CIRCLE"
		assert.Error(t, p.Validate())
	})

	t.Run("Non positive price", func(t *testing.T) {
		p := sampleProduct()
		p.Variants[0].Price = 0
		assert.Error(t, p.Validate())
	})

	t.Run("Bad image url", func(t *testing.T) {
		p := sampleProduct()
		p.ImageURL = "not-a-url"
		assert.Error(t, p.Validate())
	})
}
