package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meepleshelf/meeple-api/internal/apperr"
	"github.com/meepleshelf/meeple-api/internal/domain"
	"github.com/meepleshelf/meeple-api/internal/mocks"
	"github.com/meepleshelf/meeple-api/internal/service"
	"github.com/meepleshelf/meeple-api/internal/store"
)

func newFavoriteService(t *testing.T, favoriteStore *mocks.MockFavoriteStore) service.FavoriteService {
	t.Helper()
	svc, err := service.NewFavoriteService(favoriteStore, nil)
	require.NoError(t, err)
	return svc
}

func TestNewFavoriteService(t *testing.T) {
	_, err := service.NewFavoriteService(nil, nil)
	assert.Error(t, err)
}

func TestFavoriteService_List(t *testing.T) {
	year := 1995
	favoriteStore := &mocks.MockFavoriteStore{
		Favorites: []*domain.FavoriteWithBoardgame{
			{ID: 1, IDBoardgame: 7, Name: "Catan", Publisher: "Kosmos", Category: 1, Year: &year},
		},
	}
	svc := newFavoriteService(t, favoriteStore)

	favorites, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, int64(7), favorites[0].IDBoardgame)
	assert.Equal(t, "Catan", favorites[0].Name)
}

func TestFavoriteService_Create(t *testing.T) {
	t.Run("inserts without any existence check of its own", func(t *testing.T) {
		favoriteStore := &mocks.MockFavoriteStore{
			CreateFn: func(ctx context.Context, favorite *domain.Favorite) error {
				favorite.ID = 3
				return nil
			},
		}
		svc := newFavoriteService(t, favoriteStore)

		favorite, err := svc.Create(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(3), favorite.ID)
		assert.Equal(t, int64(7), favorite.IDBoardgame)
	})

	t.Run("propagates store failures untyped", func(t *testing.T) {
		favoriteStore := &mocks.MockFavoriteStore{Err: store.ErrInvalidEntity}
		svc := newFavoriteService(t, favoriteStore)

		_, err := svc.Create(context.Background(), 999999)
		require.Error(t, err)
		_, ok := apperr.As(err)
		assert.False(t, ok)
	})
}

func TestFavoriteService_Delete(t *testing.T) {
	t.Run("removes the favorite", func(t *testing.T) {
		favoriteStore := &mocks.MockFavoriteStore{}
		svc := newFavoriteService(t, favoriteStore)

		err := svc.Delete(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, favoriteStore.DeleteIDs)
	})

	t.Run("maps a missing row to the typed 404", func(t *testing.T) {
		favoriteStore := &mocks.MockFavoriteStore{Err: store.ErrFavoriteNotFound}
		svc := newFavoriteService(t, favoriteStore)

		err := svc.Delete(context.Background(), 999999)
		appErr, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "Favorite not found", appErr.Message)
	})
}
