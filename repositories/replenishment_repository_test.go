package repositories

import (
	"testing"

	"pos-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSupplier(t *testing.T, db *gorm.DB, code string) models.Supplier {
	t.Helper()
	supplier := models.Supplier{Code: code, Name: "Supplier " + code}
	require.NoError(t, db.Create(&supplier).Error)
	return supplier
}

func TestPlanAutoFillProposesDeficitFloor(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "RPL001", 20)
	branch := seedBranch(t, db, "RBR1")
	seedStock(t, db, product.ID, branch.ID, 5)

	repo := NewReplenishmentRepository(db)
	proposed, err := repo.PlanAutoFill(branch.ID, 0, nil)
	require.NoError(t, err)
	require.Len(t, proposed, 1)

	// Deficit is 15, but the proposal never drops below a full threshold.
	assert.Equal(t, 20, proposed[0].Qty)
	assert.True(t, proposed[0].IsAutoFill)
	assert.Equal(t, product.CostPrice, proposed[0].UnitCost)
	assert.Equal(t, float64(20)*product.CostPrice, proposed[0].LineTotal)
}

func TestPlanAutoFillSkipsHealthyStock(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "RPL002", 20)
	branch := seedBranch(t, db, "RBR2")
	seedStock(t, db, product.ID, branch.ID, 25)

	repo := NewReplenishmentRepository(db)
	proposed, err := repo.PlanAutoFill(branch.ID, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, proposed)
}

func TestPlanAutoFillStockAtThresholdQualifies(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "RPL003", 20)
	branch := seedBranch(t, db, "RBR3")
	seedStock(t, db, product.ID, branch.ID, 20)

	repo := NewReplenishmentRepository(db)
	proposed, err := repo.PlanAutoFill(branch.ID, 0, nil)
	require.NoError(t, err)
	require.Len(t, proposed, 1)
	assert.Equal(t, 20, proposed[0].Qty)
}

func TestPlanAutoFillSkipsProductsAlreadyInDraft(t *testing.T) {
	db := setupTestDB(t)
	drafted := seedProduct(t, db, "RPL004", 10)
	missing := seedProduct(t, db, "RPL005", 10)
	branch := seedBranch(t, db, "RBR4")

	repo := NewReplenishmentRepository(db)
	proposed, err := repo.PlanAutoFill(branch.ID, 0, []models.PurchaseOrderItem{
		{ProductID: drafted.ID, Qty: 3},
	})
	require.NoError(t, err)
	require.Len(t, proposed, 1)
	assert.Equal(t, missing.ID, proposed[0].ProductID)
}

func TestPlanAutoFillSkipsZeroThreshold(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "RPL006", 0)
	branch := seedBranch(t, db, "RBR5")

	repo := NewReplenishmentRepository(db)
	proposed, err := repo.PlanAutoFill(branch.ID, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, proposed)
}

func TestPlanAutoFillSupplierFilter(t *testing.T) {
	db := setupTestDB(t)
	supplier := seedSupplier(t, db, "SUP1")
	other := seedSupplier(t, db, "SUP2")
	branch := seedBranch(t, db, "RBR6")

	mine := seedProduct(t, db, "RPL007", 10)
	require.NoError(t, db.Model(&mine).Update("supplier_id", supplier.ID).Error)
	theirs := seedProduct(t, db, "RPL008", 10)
	require.NoError(t, db.Model(&theirs).Update("supplier_id", other.ID).Error)

	repo := NewReplenishmentRepository(db)
	proposed, err := repo.PlanAutoFill(branch.ID, supplier.ID, nil)
	require.NoError(t, err)
	require.Len(t, proposed, 1)
	assert.Equal(t, mine.ID, proposed[0].ProductID)

	// supplierID 0 means no filter.
	proposed, err = repo.PlanAutoFill(branch.ID, 0, nil)
	require.NoError(t, err)
	assert.Len(t, proposed, 2)
}

func TestPlanAutoFillSortedByProduct(t *testing.T) {
	db := setupTestDB(t)
	first := seedProduct(t, db, "RPL009", 5)
	second := seedProduct(t, db, "RPL010", 5)
	branch := seedBranch(t, db, "RBR7")

	repo := NewReplenishmentRepository(db)
	proposed, err := repo.PlanAutoFill(branch.ID, 0, nil)
	require.NoError(t, err)
	require.Len(t, proposed, 2)
	assert.Equal(t, first.ID, proposed[0].ProductID)
	assert.Equal(t, second.ID, proposed[1].ProductID)
}
