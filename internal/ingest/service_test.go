package ingest

import (
	"context"
	"errors"
	"testing"

	"bookdb/internal/catalog"
	"bookdb/internal/catalog/mocks"
	"bookdb/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Entries(ctx context.Context) ([]catalog.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Entry), args.Error(1)
}

func TestService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("adds every entry", func(t *testing.T) {
		src := new(mockSource)
		src.On("Entries", ctx).Return(testutil.SampleEntries(), nil)

		store := catalog.New()
		run, err := NewService(store, Config{}).Run(ctx, src)

		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, run.Status)
		assert.NotEmpty(t, run.ID)
		assert.NotNil(t, run.FinishedAt)
		assert.Equal(t, 3, run.Fetched)
		assert.Equal(t, 3, run.Added)
		assert.Equal(t, 0, run.Skipped)
		assert.Equal(t, []string{testutil.JCIP, testutil.EffectiveJava, testutil.SCJP}, store.Titles())
		src.AssertExpectations(t)
	})

	t.Run("skips existing titles", func(t *testing.T) {
		src := new(mockSource)
		src.On("Entries", ctx).Return(testutil.SampleEntries(), nil)

		store := catalog.New()
		require.NoError(t, store.Add(testutil.SCJP, []string{"Bert Bates"}))

		run, err := NewService(store, Config{}).Run(ctx, src)

		require.NoError(t, err)
		assert.Equal(t, 2, run.Added)
		assert.Equal(t, 1, run.Skipped)
		authors, _ := store.AuthorsByTitle(testutil.SCJP)
		assert.Equal(t, []string{"Bert Bates"}, authors)
	})

	t.Run("fails on duplicate when configured", func(t *testing.T) {
		src := new(mockSource)
		src.On("Entries", ctx).Return(testutil.SampleEntries(), nil)

		store := catalog.New()
		require.NoError(t, store.Add(testutil.EffectiveJava, []string{testutil.JoshuaBloch}))

		run, err := NewService(store, Config{FailOnDuplicate: true}).Run(ctx, src)

		assert.ErrorIs(t, err, catalog.ErrAlreadyExists)
		assert.Equal(t, StatusFailed, run.Status)
		assert.Equal(t, 1, run.Added)
		assert.NotEmpty(t, run.Error)
	})

	t.Run("respects max entries", func(t *testing.T) {
		src := new(mockSource)
		src.On("Entries", ctx).Return(testutil.SampleEntries(), nil)

		store := catalog.New()
		run, err := NewService(store, Config{MaxEntries: 2}).Run(ctx, src)

		require.NoError(t, err)
		assert.Equal(t, 2, run.Added)
		assert.Equal(t, []string{testutil.JCIP, testutil.EffectiveJava}, store.Titles())
	})

	t.Run("source error", func(t *testing.T) {
		src := new(mockSource)
		src.On("Entries", ctx).Return(nil, errors.New("disk on fire"))

		run, err := NewService(catalog.New(), Config{}).Run(ctx, src)

		assert.Error(t, err)
		assert.Equal(t, StatusFailed, run.Status)
		assert.Contains(t, run.Error, "disk on fire")
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		src := new(mockSource)
		src.On("Entries", cctx).Return(testutil.SampleEntries(), nil)

		store := catalog.New()
		run, err := NewService(store, Config{}).Run(cctx, src)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StatusFailed, run.Status)
		assert.Empty(t, store.Titles())
	})
}

func TestService_Run_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Add(testutil.SCJP, []string{testutil.KathySierra}).Return(errors.New("boom"))

	src := new(mockSource)
	src.On("Entries", ctx).Return([]catalog.Entry{{Title: testutil.SCJP, Authors: []string{testutil.KathySierra}}}, nil)

	run, err := NewService(store, Config{}).Run(ctx, src)

	assert.Error(t, err)
	assert.Equal(t, StatusFailed, run.Status)
	assert.Equal(t, 0, run.Added)
}
