package repositories

import (
	"sync"
	"testing"

	"pos-app/controllers/idgen"
	"pos-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityMissingEntryIsZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)

	qty, err := repo.Quantity(999, 999)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestApplyDeltaCreatesEntryLazily(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "STK001", 0)
	branch := seedBranch(t, db, "BR01")
	repo := NewStockRepository(db)

	refID := types.SnowflakeID(idgen.GenerateID())
	qty, err := repo.ApplyDelta(product.ID, branch.ID, 10, "opname", refID, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	qty, err = repo.Quantity(product.ID, branch.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestApplyDeltaWritesMovementHistory(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "STK002", 0)
	branch := seedBranch(t, db, "BR02")
	repo := NewStockRepository(db)

	refID := types.SnowflakeID(idgen.GenerateID())
	_, err := repo.ApplyDelta(product.ID, branch.ID, 10, "opname", refID, 1)
	require.NoError(t, err)
	_, err = repo.ApplyDelta(product.ID, branch.ID, -4, "transfer", refID, 1)
	require.NoError(t, err)

	movements, err := repo.GetMovements(product.ID, branch.ID)
	require.NoError(t, err)
	require.Len(t, movements, 2)

	// Newest first.
	assert.Equal(t, -4, movements[0].QtyChange)
	assert.Equal(t, 6, movements[0].QtyAfter)
	assert.Equal(t, "transfer", movements[0].RefType)
	assert.Equal(t, 10, movements[1].QtyChange)
	assert.Equal(t, 10, movements[1].QtyAfter)
}

func TestApplyDeltaRejectsNegativeResult(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "STK003", 0)
	branch := seedBranch(t, db, "BR03")
	seedStock(t, db, product.ID, branch.ID, 5)
	repo := NewStockRepository(db)

	refID := types.SnowflakeID(idgen.GenerateID())
	_, err := repo.ApplyDelta(product.ID, branch.ID, -6, "transfer", refID, 1)

	var insufficientErr *InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 6, insufficientErr.Requested)
	assert.Equal(t, 5, insufficientErr.Available)

	// State unchanged, no phantom movement.
	qty, err := repo.Quantity(product.ID, branch.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)

	movements, err := repo.GetMovements(product.ID, branch.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestApplyDeltaRejectsWithdrawalFromMissingEntry(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "STK004", 0)
	branch := seedBranch(t, db, "BR04")
	repo := NewStockRepository(db)

	refID := types.SnowflakeID(idgen.GenerateID())
	_, err := repo.ApplyDelta(product.ID, branch.ID, -1, "transfer", refID, 1)

	var insufficientErr *InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 0, insufficientErr.Available)
}

func TestApplyDeltaConcurrentWithdrawalsNeverOversell(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "STK005", 0)
	branch := seedBranch(t, db, "BR05")
	seedStock(t, db, product.ID, branch.ID, 10)
	repo := NewStockRepository(db)

	const workers = 8
	var wg sync.WaitGroup
	successes := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refID := types.SnowflakeID(idgen.GenerateID())
			if _, err := repo.ApplyDelta(product.ID, branch.ID, -3, "transfer", refID, 1); err == nil {
				successes <- 3
			}
		}()
	}
	wg.Wait()
	close(successes)

	withdrawn := 0
	for qty := range successes {
		withdrawn += qty
	}

	final, err := repo.Quantity(product.ID, branch.ID)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, final, 0)
	assert.Equal(t, 10-withdrawn, final)
	assert.LessOrEqual(t, withdrawn, 10)
}

func TestGetLowStockIncludesMissingEntries(t *testing.T) {
	db := setupTestDB(t)
	low := seedProduct(t, db, "STK006", 20)
	ok := seedProduct(t, db, "STK007", 5)
	branch := seedBranch(t, db, "BR06")
	seedStock(t, db, ok.ID, branch.ID, 50)
	repo := NewStockRepository(db)

	rows, err := repo.GetLowStock(branch.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, low.ID, rows[0].ProductID)
	assert.Equal(t, 0, rows[0].QtyOnhand)
}

func TestTotalQuantityAcrossBranches(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "STK008", 0)
	br1 := seedBranch(t, db, "BR07")
	br2 := seedBranch(t, db, "BR08")
	seedStock(t, db, product.ID, br1.ID, 12)
	seedStock(t, db, product.ID, br2.ID, 8)
	repo := NewStockRepository(db)

	total, err := repo.TotalQuantity(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, total)
}
