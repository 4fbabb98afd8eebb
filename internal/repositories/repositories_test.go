package repositories_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/config"
	"vegfeedback/internal/database"
	"vegfeedback/internal/models"
	"vegfeedback/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store struct {
	users      repositories.UserRepository
	vegetables repositories.VegetableRepository
	feedback   repositories.FeedbackRepository
}

func memoryStore(t *testing.T) store {
	return store{
		users:      repositories.NewMockUserRepository(),
		vegetables: repositories.NewMockVegetableRepository(),
		feedback:   repositories.NewMockFeedbackRepository(),
	}
}

func gormStore(t *testing.T) store {
	db, err := database.Open(config.Database{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	return store{
		users:      repositories.NewGORMUserRepository(db),
		vegetables: repositories.NewGORMVegetableRepository(db),
		feedback:   repositories.NewGORMFeedbackRepository(db),
	}
}

// forEachStore runs fn against both the in-memory and the GORM variant.
func forEachStore(t *testing.T, fn func(t *testing.T, s store)) {
	variants := map[string]func(*testing.T) store{
		"memory": memoryStore,
		"gorm":   gormStore,
	}
	for name, build := range variants {
		t.Run(name, func(t *testing.T) {
			fn(t, build(t))
		})
	}
}

func newUser(n int) *models.User {
	return &models.User{
		Username:  fmt.Sprintf("student%d", n),
		Email:     fmt.Sprintf("student%d@bitwardha.ac.in", n),
		Password:  "hash",
		PRNNumber: fmt.Sprintf("PRN%03d", n),
	}
}

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store) {
		ctx := context.Background()
		for i := 1; i <= 3; i++ {
			user := newUser(i)
			require.NoError(t, s.users.Create(ctx, user))
			assert.Equal(t, uint(i), user.ID)
		}

		got, err := s.users.GetByEmail(ctx, "student2@bitwardha.ac.in")
		require.NoError(t, err)
		assert.Equal(t, uint(2), got.ID)
		assert.Equal(t, "PRN002", got.PRNNumber)

		got, err = s.users.GetByUsername(ctx, "student3")
		require.NoError(t, err)
		assert.Equal(t, uint(3), got.ID)

		got, err = s.users.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "student1", got.Username)
	})
}

func TestUserRepository_Conflicts(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store) {
		ctx := context.Background()
		require.NoError(t, s.users.Create(ctx, newUser(1)))

		dupEmail := newUser(2)
		dupEmail.Email = "student1@bitwardha.ac.in"
		err := s.users.Create(ctx, dupEmail)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Contains(t, err.Error(), "already registered")

		dupUsername := newUser(3)
		dupUsername.Username = "student1"
		err = s.users.Create(ctx, dupUsername)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Contains(t, err.Error(), "already taken")

		_, err = s.users.GetByEmail(ctx, "student2@bitwardha.ac.in")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		next := newUser(4)
		require.NoError(t, s.users.Create(ctx, next))
		assert.Greater(t, next.ID, uint(1))
	})
}

func TestUserRepository_Lookups_NotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store) {
		ctx := context.Background()
		_, err := s.users.GetByID(ctx, 42)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = s.users.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestMockUserRepository_ConcurrentCreate(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	const n = 50
	ids := make([]uint, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := newUser(i)
			if err := repo.Create(ctx, user); err == nil {
				ids[i] = user.ID
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[uint]bool, n)
	for _, id := range ids {
		require.NotZero(t, id)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	for id := uint(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestVegetableRepository(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store) {
		ctx := context.Background()

		count, err := s.vegetables.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		url := "https://example.com/dal.jpg"
		seed := []models.Vegetable{
			{Name: "Spinach Curry", MealType: models.MealLunch},
			{Name: "Dal Tadka", MealType: models.MealDinner, ImageURL: &url},
			{Name: "Aloo Gobi", MealType: models.MealLunch},
		}
		for i := range seed {
			require.NoError(t, s.vegetables.Create(ctx, &seed[i]))
			assert.Equal(t, uint(i+1), seed[i].ID)
		}

		all, err := s.vegetables.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Spinach Curry", all[0].Name)
		assert.Equal(t, "Aloo Gobi", all[2].Name)
		assert.Nil(t, all[0].ImageURL)

		got, err := s.vegetables.GetByID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, got.ImageURL)
		assert.Equal(t, url, *got.ImageURL)
		assert.Equal(t, models.MealDinner, got.MealType)

		_, err = s.vegetables.GetByID(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		count, err = s.vegetables.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestFeedbackRepository_CreateAndTally(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store) {
		ctx := context.Background()

		votes := []models.Feedback{
			{UserID: 1, VegetableID: 1, IsLiked: true},
			{UserID: 1, VegetableID: 2, IsLiked: false},
			{UserID: 2, VegetableID: 1, IsLiked: false},
			{UserID: 2, VegetableID: 1, IsLiked: true},
			// No existence check: vegetable 77 is not in any catalog.
			{UserID: 3, VegetableID: 77, IsLiked: true},
		}
		for i := range votes {
			require.NoError(t, s.feedback.Create(ctx, &votes[i]))
			assert.Equal(t, uint(i+1), votes[i].ID)
			assert.False(t, votes[i].CreatedAt.IsZero())
		}

		tallies, err := s.feedback.Tally(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.VoteTally{
			{VegetableID: 1, Likes: 2, Dislikes: 1},
			{VegetableID: 2, Likes: 0, Dislikes: 1},
			{VegetableID: 77, Likes: 1, Dislikes: 0},
		}, tallies)

		mine, err := s.feedback.GetByUser(ctx, 2)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, uint(3), mine[0].ID)
		assert.Equal(t, uint(4), mine[1].ID)

		got, err := s.feedback.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.False(t, got.IsLiked)

		_, err = s.feedback.GetByID(ctx, 100)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestFeedbackRepository_CreateBatch(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store) {
		ctx := context.Background()

		batch := []models.Feedback{
			{UserID: 5, VegetableID: 1, IsLiked: true, SubmissionID: "sub-1"},
			{UserID: 5, VegetableID: 2, IsLiked: true, SubmissionID: "sub-1"},
		}
		require.NoError(t, s.feedback.CreateBatch(ctx, batch))
		assert.Equal(t, uint(1), batch[0].ID)
		assert.Equal(t, uint(2), batch[1].ID)

		mine, err := s.feedback.GetByUser(ctx, 5)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, "sub-1", mine[1].SubmissionID)

		require.NoError(t, s.feedback.CreateBatch(ctx, nil))
	})
}

func TestFeedbackRepository_EmptyTally(t *testing.T) {
	forEachStore(t, func(t *testing.T, s store) {
		tallies, err := s.feedback.Tally(context.Background())
		require.NoError(t, err)
		assert.Empty(t, tallies)
	})
}
