package postgres_test

import (
	"context"
	"testing"
	"time"

	"family-timeline/internal/adapters/repository/postgres"
	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSqlPhotoRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	photoRepo := postgres.NewSqlPhotoRepository(dbConnection)
	base := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, n int) []domain.Photo {
		t.Helper()
		photos := make([]domain.Photo, 0, n)
		for i := 0; i < n; i++ {
			p, err := photoRepo.Create(ctx, domain.NewPhoto{
				PublicID: "family/p" + uuid.NewString(),
				URL:      "https://cdn.example/p.jpg",
				TakenAt:  base.Add(time.Duration(i) * time.Hour),
			})
			require.NoError(t, err)
			photos = append(photos, *p)
		}
		return photos
	}

	t.Run("create and find", func(t *testing.T) {
		truncate()
		created, err := photoRepo.Create(ctx, domain.NewPhoto{
			PublicID:    "family/a",
			URL:         "https://cdn.example/a.jpg",
			TakenAt:     base,
			Description: ptr("first steps"),
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.False(t, created.UploadedAt.IsZero())

		found, err := photoRepo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "first steps", *found.Description)
		require.True(t, base.Equal(found.TakenAt))
	})

	t.Run("find unknown", func(t *testing.T) {
		truncate()
		_, err := photoRepo.FindByID(ctx, uuid.New())
		require.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})

	t.Run("list walks every page without duplicates", func(t *testing.T) {
		truncate()
		seed(t, 5)

		seen := map[uuid.UUID]bool{}
		var cursor *uuid.UUID
		var previous *domain.Photo
		pages := 0
		for {
			page, next, err := photoRepo.List(ctx, 2, cursor)
			require.NoError(t, err)
			pages++
			for i := range page {
				require.False(t, seen[page[i].ID])
				seen[page[i].ID] = true
				if previous != nil {
					require.False(t, page[i].TakenAt.After(previous.TakenAt))
				}
				previous = &page[i]
			}
			if next == nil {
				break
			}
			require.Equal(t, page[len(page)-1].ID, *next)
			cursor = next
		}
		require.Len(t, seen, 5)
		require.Equal(t, 3, pages)
	})

	t.Run("list with equal taken_at uses id tie-break", func(t *testing.T) {
		truncate()
		for i := 0; i < 3; i++ {
			_, err := photoRepo.Create(ctx, domain.NewPhoto{PublicID: "p", URL: "u", TakenAt: base})
			require.NoError(t, err)
		}

		first, next, err := photoRepo.List(ctx, 2, nil)
		require.NoError(t, err)
		require.NotNil(t, next)
		second, next, err := photoRepo.List(ctx, 2, next)
		require.NoError(t, err)
		require.Nil(t, next)
		require.Len(t, first, 2)
		require.Len(t, second, 1)
		require.NotContains(t, []uuid.UUID{first[0].ID, first[1].ID}, second[0].ID)
	})

	t.Run("list exact page has no cursor", func(t *testing.T) {
		truncate()
		seed(t, 2)

		page, next, err := photoRepo.List(ctx, 2, nil)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Nil(t, next)
	})

	t.Run("list after the cursor photo was deleted", func(t *testing.T) {
		truncate()
		seed(t, 3)

		first, next, err := photoRepo.List(ctx, 2, nil)
		require.NoError(t, err)
		require.NotNil(t, next)
		require.Equal(t, first[1].ID, *next)
		require.NoError(t, photoRepo.Delete(ctx, *next))

		page, after, err := photoRepo.List(ctx, 2, next)
		require.NoError(t, err)
		require.Empty(t, page)
		require.Nil(t, after)
	})

	t.Run("update fields", func(t *testing.T) {
		truncate()
		photo := seed(t, 1)[0]
		newTakenAt := base.AddDate(-1, 0, 0)

		updated, err := photoRepo.Update(ctx, photo.ID, domain.PhotoPatch{TakenAt: &newTakenAt, SetDescription: true, Description: ptr("birthday")})
		require.NoError(t, err)
		require.True(t, newTakenAt.Equal(updated.TakenAt))
		require.Equal(t, "birthday", *updated.Description)

		cleared, err := photoRepo.Update(ctx, photo.ID, domain.PhotoPatch{SetDescription: true})
		require.NoError(t, err)
		require.Nil(t, cleared.Description)
		require.True(t, newTakenAt.Equal(cleared.TakenAt))
	})

	t.Run("editing takenAt moves the photo in later listings", func(t *testing.T) {
		truncate()
		photos := seed(t, 3)
		oldest, newest := photos[0], photos[2]

		before, _, err := photoRepo.List(ctx, 10, nil)
		require.NoError(t, err)
		require.Equal(t, oldest.ID, before[len(before)-1].ID)

		moved := newest.TakenAt.Add(24 * time.Hour)
		_, err = photoRepo.Update(ctx, oldest.ID, domain.PhotoPatch{TakenAt: &moved})
		require.NoError(t, err)

		after, next, err := photoRepo.List(ctx, 10, nil)
		require.NoError(t, err)
		require.Nil(t, next)
		require.Len(t, after, 3)
		require.Equal(t, []uuid.UUID{oldest.ID, newest.ID, photos[1].ID}, []uuid.UUID{after[0].ID, after[1].ID, after[2].ID})
	})

	t.Run("update unknown", func(t *testing.T) {
		truncate()
		_, err := photoRepo.Update(ctx, uuid.New(), domain.PhotoPatch{SetDescription: true})
		require.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		truncate()
		photo := seed(t, 1)[0]

		require.NoError(t, photoRepo.Delete(ctx, photo.ID))
		require.ErrorIs(t, photoRepo.Delete(ctx, photo.ID), domain.ErrPhotoNotFound)
	})
}
