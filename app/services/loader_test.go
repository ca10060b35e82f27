package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-timetable/app/database/inmem"
	"sms-timetable/app/models"
)

// unavailableStore simulates an unreachable backing store.
type unavailableStore struct{}

func (unavailableStore) ListByYear(context.Context, string) ([]models.Session, error) {
	return nil, models.ErrStoreUnavailable
}
func (unavailableStore) ListByClass(context.Context, string, string) ([]models.Session, error) {
	return nil, models.ErrStoreUnavailable
}
func (unavailableStore) ListByTeacher(context.Context, string, string) ([]models.Session, error) {
	return nil, models.ErrStoreUnavailable
}
func (unavailableStore) ListByRoom(context.Context, string) ([]models.Session, error) {
	return nil, models.ErrStoreUnavailable
}
func (unavailableStore) ListByDay(context.Context, int, string) ([]models.Session, error) {
	return nil, models.ErrStoreUnavailable
}
func (unavailableStore) Get(context.Context, string) (*models.Session, error) {
	return nil, models.ErrStoreUnavailable
}
func (unavailableStore) Create(context.Context, *models.Session) error {
	return models.ErrStoreUnavailable
}
func (unavailableStore) Update(context.Context, *models.Session) error {
	return models.ErrStoreUnavailable
}
func (unavailableStore) Deactivate(context.Context, string) error {
	return models.ErrStoreUnavailable
}
func (unavailableStore) Delete(context.Context, string) error {
	return models.ErrStoreUnavailable
}

func TestLoaderPropagatesStoreUnavailable(t *testing.T) {
	// An unreachable store is "no schedule data available", never an empty
	// schedule: the error must reach the caller.
	loader := NewLoader(unavailableStore{}, models.DefaultWeekdays())
	ctx := context.Background()

	_, err := loader.LoadAll(ctx, testYear)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	_, err = loader.LoadByClass(ctx, "c1", testYear)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	_, err = loader.LoadByTeacher(ctx, "t1", testYear)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	_, err = loader.Conflicts(ctx, testYear)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestLoaderScopedLoadsAreSnapshots(t *testing.T) {
	store := inmem.NewSessionStore()
	loader := NewLoader(store, models.DefaultWeekdays())
	ctx := context.Background()

	teacher := "t1"
	for _, day := range []int{1, 2} {
		s := newSession("", withTeacher(teacher), withClass("c1"), withSlot(day, "08:00"))
		require.NoError(t, store.Create(ctx, &s))
	}
	other := newSession("", withTeacher("t2"), withClass("c2"))
	require.NoError(t, store.Create(ctx, &other))

	byTeacher, err := loader.LoadByTeacher(ctx, teacher, testYear)
	require.NoError(t, err)
	assert.Len(t, byTeacher, 2)

	byClass, err := loader.LoadByClass(ctx, "c2", testYear)
	require.NoError(t, err)
	assert.Len(t, byClass, 1)

	byDay, err := loader.LoadByDay(ctx, 1, testYear)
	require.NoError(t, err)
	assert.Len(t, byDay, 2)

	// Mutating a returned snapshot does not leak into the store.
	byTeacher[0].TeacherID = strPtr("mutated")
	again, err := loader.LoadByTeacher(ctx, teacher, testYear)
	require.NoError(t, err)
	assert.Equal(t, teacher, *again[0].TeacherID)
}
