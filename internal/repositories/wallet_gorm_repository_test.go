package repositories_test

import (
	"errors"
	"testing"

	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMWalletRepository(t *testing.T) {
	repo := repositories.NewGORMWalletRepository(newTestDB(t))

	_, err := repo.GetByUserID(1)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	require.NoError(t, repo.Create(&models.Wallet{UserID: 1, Address: "addr", PrivateKey: "key"}))
	wallet, err := repo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, "addr", wallet.Address)
	assert.Equal(t, "key", wallet.PrivateKey)

	sender := uint(1)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.RecordTransaction(&models.Transaction{
			Kind:            models.TransactionExtraction,
			SenderID:        &sender,
			ReceiverAddress: "external",
			Amount:          0.01,
		}))
	}
	txs, total, err := repo.ListTransactions(2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, txs, 1)
}

func TestGORMAdminRepository(t *testing.T) {
	repo := repositories.NewGORMAdminRepository(newTestDB(t))

	require.NoError(t, repo.Create(&models.Admin{Username: "root", Email: "root@fiufit.com"}))
	err := repo.Create(&models.Admin{Username: "other", Email: "root@fiufit.com"})
	assert.True(t, errors.Is(err, repositories.ErrDuplicate))

	admin, err := repo.GetByEmail("root@fiufit.com")
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)

	_, err = repo.GetByEmail("nobody@fiufit.com")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	admins, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}
