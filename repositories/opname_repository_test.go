package repositories

import (
	"strings"
	"testing"

	"pos-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpnameMatchingCountIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "OPN001", 0)
	branch := seedBranch(t, db, "OBR1")
	seedStock(t, db, product.ID, branch.ID, 30)

	repo := NewOpnameRepository(db)
	result, err := repo.SaveOpname(branch.ID, []OpnameLineInput{
		{ProductID: product.ID, ActualQty: 30},
	}, "stok opname bulanan", 1)
	require.NoError(t, err)

	assert.Zero(t, result.TotalVariance)
	require.Len(t, result.Opname.Items, 1)
	assert.Zero(t, result.Opname.Items[0].Difference)
	assert.Equal(t, 30, result.Opname.Items[0].SystemQty)

	// Zero-difference lines produce no ledger mutation.
	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&movements).Error)
	assert.Zero(t, movements)

	qty, err := NewStockRepository(db).Quantity(product.ID, branch.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, qty)
}

func TestSaveOpnameAppliesDifference(t *testing.T) {
	db := setupTestDB(t)
	short := seedProduct(t, db, "OPN002", 0)
	over := seedProduct(t, db, "OPN003", 0)
	untouched := seedProduct(t, db, "OPN004", 0)
	branch := seedBranch(t, db, "OBR2")
	seedStock(t, db, short.ID, branch.ID, 30)
	seedStock(t, db, over.ID, branch.ID, 10)
	seedStock(t, db, untouched.ID, branch.ID, 7)

	repo := NewOpnameRepository(db)
	result, err := repo.SaveOpname(branch.ID, []OpnameLineInput{
		{ProductID: short.ID, ActualQty: 27},
		{ProductID: over.ID, ActualQty: 13},
	}, "", 1)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalVariance) // -3 + 3
	assert.True(t, strings.HasPrefix(result.Opname.Code, "OPN-"))

	stockRepo := NewStockRepository(db)

	qty, err := stockRepo.Quantity(short.ID, branch.ID)
	require.NoError(t, err)
	assert.Equal(t, 27, qty)

	qty, err = stockRepo.Quantity(over.ID, branch.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, qty)

	// Products not on the count sheet are left alone.
	qty, err = stockRepo.Quantity(untouched.ID, branch.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)

	movements, err := stockRepo.GetMovements(short.ID, branch.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, -3, movements[0].QtyChange)
	assert.Equal(t, "opname", movements[0].RefType)
}

func TestSaveOpnameCountForUntrackedProduct(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "OPN005", 0)
	branch := seedBranch(t, db, "OBR3")

	repo := NewOpnameRepository(db)
	result, err := repo.SaveOpname(branch.ID, []OpnameLineInput{
		{ProductID: product.ID, ActualQty: 5},
	}, "", 1)
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalVariance)
	assert.Zero(t, result.Opname.Items[0].SystemQty)

	qty, err := NewStockRepository(db).Quantity(product.ID, branch.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)
}

func TestSaveOpnameDuplicateLine(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "OPN006", 0)
	branch := seedBranch(t, db, "OBR4")

	repo := NewOpnameRepository(db)
	_, err := repo.SaveOpname(branch.ID, []OpnameLineInput{
		{ProductID: product.ID, ActualQty: 5},
		{ProductID: product.ID, ActualQty: 6},
	}, "", 1)

	var dupErr *DuplicateLineError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, product.ID, dupErr.ProductID)

	var count int64
	require.NoError(t, db.Model(&models.Opname{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveOpnameEmptyLines(t *testing.T) {
	db := setupTestDB(t)
	branch := seedBranch(t, db, "OBR5")

	repo := NewOpnameRepository(db)
	_, err := repo.SaveOpname(branch.ID, nil, "", 1)
	assert.ErrorIs(t, err, ErrEmptyLines)
}

func TestGenerateCountSheet(t *testing.T) {
	db := setupTestDB(t)
	tracked := seedProduct(t, db, "OPN007", 0)
	fresh := seedProduct(t, db, "OPN008", 0)
	branch := seedBranch(t, db, "OBR6")
	seedStock(t, db, tracked.ID, branch.ID, 42)

	repo := NewOpnameRepository(db)
	rows, err := repo.GenerateCountSheet(branch.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byProduct := make(map[uint]CountSheetRow)
	for _, row := range rows {
		byProduct[row.ProductID] = row
	}
	assert.Equal(t, 42, byProduct[tracked.ID].SystemQty)
	assert.Zero(t, byProduct[fresh.ID].SystemQty)
}

func TestGetOpnameByCode(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "OPN009", 0)
	branch := seedBranch(t, db, "OBR7")
	seedStock(t, db, product.ID, branch.ID, 3)

	repo := NewOpnameRepository(db)
	result, err := repo.SaveOpname(branch.ID, []OpnameLineInput{
		{ProductID: product.ID, ActualQty: 3},
	}, "", 1)
	require.NoError(t, err)

	loaded, err := repo.GetOpnameByCode(result.Opname.Code)
	require.NoError(t, err)
	assert.Equal(t, result.Opname.RecordID, loaded.RecordID)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, branch.ID, loaded.Branch.ID)
}
