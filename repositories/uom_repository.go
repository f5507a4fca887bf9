package repositories

import (
	"errors"
	"math"

	"pos-app/models"

	"gorm.io/gorm"
)

type UomRepository struct {
	DB *gorm.DB
}

func NewUomRepository(DB *gorm.DB) *UomRepository {
	return &UomRepository{DB: DB}
}

type UomConversionResult struct {
	ProductID        uint    `json:"product_id"`
	FromUom          string  `json:"from_uom"`
	FromQty          float64 `json:"from_qty"`
	ToUom            string  `json:"to_uom"`
	ConversionFactor float64 `json:"conversion_factor"`
	QtyBase          int     `json:"qty_base"`
}

// ToBaseUnits converts a quantity in any of the product's sale units to base
// units. The base unit converts with factor 1; alternates multiply by their
// conversion factor and round to the nearest whole base unit.
func (r *UomRepository) ToBaseUnits(productID uint, qty float64, uomName string) (UomConversionResult, error) {
	var product models.Product
	if err := r.DB.First(&product, productID).Error; err != nil {
		return UomConversionResult{}, err
	}

	factor, err := r.resolveFactor(&product, uomName)
	if err != nil {
		return UomConversionResult{}, err
	}

	return UomConversionResult{
		ProductID:        productID,
		FromUom:          uomName,
		FromQty:          qty,
		ToUom:            product.BaseUom,
		ConversionFactor: factor,
		QtyBase:          int(math.Round(qty * factor)),
	}, nil
}

// FromBaseUnits converts a base-unit quantity back to a sale unit for
// display.
func (r *UomRepository) FromBaseUnits(productID uint, qtyBase int, uomName string) (float64, error) {
	var product models.Product
	if err := r.DB.First(&product, productID).Error; err != nil {
		return 0, err
	}

	factor, err := r.resolveFactor(&product, uomName)
	if err != nil {
		return 0, err
	}

	return float64(qtyBase) / factor, nil
}

func (r *UomRepository) resolveFactor(product *models.Product, uomName string) (float64, error) {
	if uomName == product.BaseUom {
		return 1, nil
	}

	var unit models.ProductUnit
	err := r.DB.Where("product_id = ? AND name = ?", product.ID, uomName).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &UnknownUnitError{ProductID: product.ID, UnitName: uomName}
		}
		return 0, err
	}

	if unit.ConversionFactor <= 0 {
		return 0, &UnknownUnitError{ProductID: product.ID, UnitName: uomName}
	}

	return unit.ConversionFactor, nil
}
