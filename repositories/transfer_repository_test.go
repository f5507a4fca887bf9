package repositories

import (
	"strings"
	"testing"

	"pos-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransferMovesStock(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "TRF001", 0,
		models.ProductUnit{Name: "BOX", ConversionFactor: 12},
	)
	source := seedBranch(t, db, "SRC1")
	dest := seedBranch(t, db, "DST1")
	seedStock(t, db, product.ID, source.ID, 100)

	repo := NewTransferRepository(db)
	transfer, err := repo.CreateTransfer(source.ID, dest.ID, []TransferLineInput{
		{ProductID: product.ID, Qty: 2, Uom: "BOX"},
	}, "restock cabang", 1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(transfer.Code, "TRF-"))
	assert.Equal(t, "applied", transfer.Status)
	require.Len(t, transfer.Items, 1)
	assert.Equal(t, 24, transfer.Items[0].QtyBase)

	stockRepo := NewStockRepository(db)
	srcQty, err := stockRepo.Quantity(product.ID, source.ID)
	require.NoError(t, err)
	dstQty, err := stockRepo.Quantity(product.ID, dest.ID)
	require.NoError(t, err)

	assert.Equal(t, 76, srcQty)
	assert.Equal(t, 24, dstQty)
	// Stock is conserved across branches.
	assert.Equal(t, 100, srcQty+dstQty)
}

func TestCreateTransferSameBranch(t *testing.T) {
	db := setupTestDB(t)
	branch := seedBranch(t, db, "SRC2")

	repo := NewTransferRepository(db)
	_, err := repo.CreateTransfer(branch.ID, branch.ID, []TransferLineInput{
		{ProductID: 1, Qty: 1, Uom: "PCS"},
	}, "", 1)

	assert.ErrorIs(t, err, ErrSameBranch)
}

func TestCreateTransferEmptyLines(t *testing.T) {
	db := setupTestDB(t)
	source := seedBranch(t, db, "SRC3")
	dest := seedBranch(t, db, "DST3")

	repo := NewTransferRepository(db)
	_, err := repo.CreateTransfer(source.ID, dest.ID, nil, "", 1)

	assert.ErrorIs(t, err, ErrEmptyLines)
}

func TestCreateTransferInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "TRF002", 0)
	source := seedBranch(t, db, "SRC4")
	dest := seedBranch(t, db, "DST4")
	seedStock(t, db, product.ID, source.ID, 10)

	repo := NewTransferRepository(db)

	// Exactly the on-hand amount is fine.
	_, err := repo.CreateTransfer(source.ID, dest.ID, []TransferLineInput{
		{ProductID: product.ID, Qty: 10, Uom: "PCS"},
	}, "", 1)
	require.NoError(t, err)

	// One more unit is not.
	_, err = repo.CreateTransfer(source.ID, dest.ID, []TransferLineInput{
		{ProductID: product.ID, Qty: 1, Uom: "PCS"},
	}, "", 1)

	var insufficientErr *InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 1, insufficientErr.Requested)
	assert.Equal(t, 0, insufficientErr.Available)
}

func TestCreateTransferAggregatesSplitLines(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "TRF003", 0)
	source := seedBranch(t, db, "SRC5")
	dest := seedBranch(t, db, "DST5")
	seedStock(t, db, product.ID, source.ID, 10)

	repo := NewTransferRepository(db)

	// 6 + 6 split over two lines for the same product must be checked as
	// 12 against the 10 on hand, not 6 twice.
	_, err := repo.CreateTransfer(source.ID, dest.ID, []TransferLineInput{
		{ProductID: product.ID, Qty: 6, Uom: "PCS"},
		{ProductID: product.ID, Qty: 6, Uom: "PCS"},
	}, "", 1)

	var insufficientErr *InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 12, insufficientErr.Requested)

	stockRepo := NewStockRepository(db)
	qty, err := stockRepo.Quantity(product.ID, source.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestCreateTransferUnknownUnitRejectsBeforeMutation(t *testing.T) {
	db := setupTestDB(t)
	good := seedProduct(t, db, "TRF004", 0)
	bad := seedProduct(t, db, "TRF005", 0)
	source := seedBranch(t, db, "SRC6")
	dest := seedBranch(t, db, "DST6")
	seedStock(t, db, good.ID, source.ID, 50)
	seedStock(t, db, bad.ID, source.ID, 50)

	repo := NewTransferRepository(db)
	_, err := repo.CreateTransfer(source.ID, dest.ID, []TransferLineInput{
		{ProductID: good.ID, Qty: 5, Uom: "PCS"},
		{ProductID: bad.ID, Qty: 5, Uom: "PALLET"},
	}, "", 1)

	var unknownErr *UnknownUnitError
	require.ErrorAs(t, err, &unknownErr)

	// Nothing moved, no transfer recorded.
	stockRepo := NewStockRepository(db)
	qty, err := stockRepo.Quantity(good.ID, source.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, qty)

	var count int64
	require.NoError(t, db.Model(&models.Transfer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateTransferRollsBackWhole(t *testing.T) {
	db := setupTestDB(t)
	rich := seedProduct(t, db, "TRF006", 0)
	poor := seedProduct(t, db, "TRF007", 0)
	source := seedBranch(t, db, "SRC7")
	dest := seedBranch(t, db, "DST7")
	seedStock(t, db, rich.ID, source.ID, 100)
	seedStock(t, db, poor.ID, source.ID, 2)

	repo := NewTransferRepository(db)
	_, err := repo.CreateTransfer(source.ID, dest.ID, []TransferLineInput{
		{ProductID: rich.ID, Qty: 50, Uom: "PCS"},
		{ProductID: poor.ID, Qty: 5, Uom: "PCS"},
	}, "", 1)
	require.Error(t, err)

	// The valid line must not have been applied either.
	stockRepo := NewStockRepository(db)
	richQty, err := stockRepo.Quantity(rich.ID, source.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, richQty)

	dstQty, err := stockRepo.Quantity(rich.ID, dest.ID)
	require.NoError(t, err)
	assert.Zero(t, dstQty)

	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&movements).Error)
	assert.Zero(t, movements)
}

func TestGetTransferByCode(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "TRF008", 0)
	source := seedBranch(t, db, "SRC8")
	dest := seedBranch(t, db, "DST8")
	seedStock(t, db, product.ID, source.ID, 10)

	repo := NewTransferRepository(db)
	created, err := repo.CreateTransfer(source.ID, dest.ID, []TransferLineInput{
		{ProductID: product.ID, Qty: 4, Uom: "PCS"},
	}, "", 1)
	require.NoError(t, err)

	loaded, err := repo.GetTransferByCode(created.Code)
	require.NoError(t, err)
	assert.Equal(t, created.RecordID, loaded.RecordID)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, source.ID, loaded.Source.ID)
	assert.Equal(t, dest.ID, loaded.Dest.ID)
}
