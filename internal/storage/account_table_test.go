package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAccountRow(id int64, name string) *Account {
	return &Account{
		AccountID:       id,
		AccountTypeCode: 1,
		CustomerID:      42,
		AccountName:     name,
		DateOpened:      "2024-03-01",
		CurrentBalance:  decimal.RequireFromString("100.50"),
	}
}

// -- FindByID tests --

func TestAccountsTable_InsertAndFindByID(t *testing.T) {
	store := NewTestStorage(t)
	ctx := context.Background()

	row := makeAccountRow(1, "Checking")
	require.NoError(t, store.Accounts.Insert(ctx, row))

	found, err := store.Accounts.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), found.AccountID)
	assert.Equal(t, 1, found.AccountTypeCode)
	assert.Equal(t, int64(42), found.CustomerID)
	assert.Equal(t, "Checking", found.AccountName)
	assert.Equal(t, "2024-03-01", found.DateOpened)
	assert.True(t, found.CurrentBalance.Equal(decimal.RequireFromString("100.50")))
}

func TestAccountsTable_FindByID_NotFound(t *testing.T) {
	store := NewTestStorage(t)

	found, err := store.Accounts.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, found)
}

// -- List tests --

func TestAccountsTable_List_Empty(t *testing.T) {
	store := NewTestStorage(t)

	rows, err := store.Accounts.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 0)
}

func TestAccountsTable_List_OrderedByID(t *testing.T) {
	store := NewTestStorage(t)
	ctx := context.Background()

	// Insert out of order; List returns ascending account_id.
	require.NoError(t, store.Accounts.Insert(ctx, makeAccountRow(2, "Second")))
	require.NoError(t, store.Accounts.Insert(ctx, makeAccountRow(1, "First")))

	rows, err := store.Accounts.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].AccountID)
	assert.Equal(t, int64(2), rows[1].AccountID)
}

// -- Update tests --

func TestAccountsTable_Update_OverwritesRow(t *testing.T) {
	store := NewTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Accounts.Insert(ctx, makeAccountRow(1, "Checking")))

	row, err := store.Accounts.FindByID(ctx, 1)
	require.NoError(t, err)
	row.AccountName = "Renamed"
	row.CurrentBalance = decimal.RequireFromString("1500.00")
	require.NoError(t, store.Accounts.Update(ctx, row))

	found, err := store.Accounts.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", found.AccountName)
	assert.True(t, found.CurrentBalance.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, "2024-03-01", found.DateOpened, "untouched fields keep their values")
}

// -- DeleteWithTransactions tests --

func TestAccountsTable_DeleteWithTransactions_RemovesDependents(t *testing.T) {
	store := NewTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Accounts.Insert(ctx, makeAccountRow(1, "Doomed")))
	require.NoError(t, store.Accounts.Insert(ctx, makeAccountRow(2, "Survivor")))
	require.NoError(t, store.Transactions.Insert(ctx, &Transaction{
		AccountID:           1,
		TransactionTypeCode: 1,
		Amount:              decimal.RequireFromString("25.00"),
		TransactionDate:     "2024-03-02",
	}))
	require.NoError(t, store.Transactions.Insert(ctx, &Transaction{
		AccountID:           2,
		TransactionTypeCode: 1,
		Amount:              decimal.RequireFromString("10.00"),
		TransactionDate:     "2024-03-03",
	}))

	assert.NoError(t, store.Accounts.DeleteWithTransactions(ctx, 1))

	_, err := store.Accounts.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	gone, err := store.Transactions.ListByAccount(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, gone, 0)

	kept, err := store.Transactions.ListByAccount(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, kept, 1, "other accounts keep their transactions")
}

func TestAccountsTable_DeleteWithTransactions_NoTransactions(t *testing.T) {
	store := NewTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Accounts.Insert(ctx, makeAccountRow(1, "Empty")))

	assert.NoError(t, store.Accounts.DeleteWithTransactions(ctx, 1))

	_, err := store.Accounts.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
