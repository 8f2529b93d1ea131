package repositories_test

import (
	"fmt"
	"testing"

	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	return db
}

func newUser(n int, athlete bool) *models.User {
	return &models.User{
		Email:            fmt.Sprintf("user_%d@fiufit.com", n),
		Username:         fmt.Sprintf("user_%d", n),
		Name:             "Name",
		Surname:          "Surname",
		Height:           1.8,
		Weight:           70,
		BirthDate:        "23-4-1990",
		Location:         "Buenos Aires, Argentina",
		RegistrationDate: "23-4-2023",
		IsAthlete:        athlete,
	}
}

func seedUsers(t *testing.T, repo repositories.UserRepository, n int) []*models.User {
	t.Helper()
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		u := newUser(i, false)
		require.NoError(t, repo.Create(u))
		users = append(users, u)
	}
	return users
}
