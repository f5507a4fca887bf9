package repositories

import (
	"testing"

	"pos-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnitsBaseUom(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "ITM001", 0)

	repo := NewUomRepository(db)
	conv, err := repo.ToBaseUnits(product.ID, 7, "PCS")
	require.NoError(t, err)

	assert.Equal(t, 7, conv.QtyBase)
	assert.Equal(t, float64(1), conv.ConversionFactor)
	assert.Equal(t, "PCS", conv.ToUom)
}

func TestToBaseUnitsAlternateUom(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "ITM002", 0,
		models.ProductUnit{Name: "BOX", ConversionFactor: 12},
		models.ProductUnit{Name: "KRT", ConversionFactor: 144},
	)

	repo := NewUomRepository(db)

	conv, err := repo.ToBaseUnits(product.ID, 3, "BOX")
	require.NoError(t, err)
	assert.Equal(t, 36, conv.QtyBase)

	conv, err = repo.ToBaseUnits(product.ID, 0.5, "KRT")
	require.NoError(t, err)
	assert.Equal(t, 72, conv.QtyBase)
}

func TestToBaseUnitsRoundsToNearest(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "ITM003", 0,
		models.ProductUnit{Name: "KG", ConversionFactor: 3},
	)

	repo := NewUomRepository(db)
	conv, err := repo.ToBaseUnits(product.ID, 0.4, "KG")
	require.NoError(t, err)
	// 0.4 * 3 = 1.2 rounds to 1
	assert.Equal(t, 1, conv.QtyBase)
}

func TestToBaseUnitsUnknownUnit(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "ITM004", 0)

	repo := NewUomRepository(db)
	_, err := repo.ToBaseUnits(product.ID, 1, "PALLET")

	var unknownErr *UnknownUnitError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, product.ID, unknownErr.ProductID)
	assert.Equal(t, "PALLET", unknownErr.UnitName)
}

func TestFromBaseUnitsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "ITM005", 0,
		models.ProductUnit{Name: "BOX", ConversionFactor: 12},
	)

	repo := NewUomRepository(db)

	conv, err := repo.ToBaseUnits(product.ID, 5, "BOX")
	require.NoError(t, err)

	back, err := repo.FromBaseUnits(product.ID, conv.QtyBase, "BOX")
	require.NoError(t, err)
	assert.InDelta(t, 5, back, 0.0001)
}
