package doctor

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermacare/booking-api/internal/model"
	"github.com/dermacare/booking-api/pkg/errors"
)

type fakeRepo struct {
	byCity map[string][]*model.Doctor
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*model.Doctor, error) {
	for _, docs := range r.byCity {
		for _, d := range docs {
			if d.ID == id {
				return d, nil
			}
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeRepo) SearchByCity(_ context.Context, city string) ([]*model.Doctor, error) {
	return r.byCity[city], nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byCity: map[string][]*model.Doctor{
		"chennai": {
			{ID: 1, FirstName: "Asha", LastName: "Rao", City: "chennai"},
			{ID: 2, FirstName: "Vikram", LastName: "Iyer", City: "chennai"},
		},
		"mumbai": {
			{ID: 3, FirstName: "Meera", LastName: "Shah", City: "mumbai"},
		},
	}}
}

func TestSearchByCity(t *testing.T) {
	svc := NewService(newFakeRepo())

	docs, err := svc.SearchByCity(context.Background(), "mumbai")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, int64(3), docs[0].ID)
}

func TestSearchByCityRequiresCity(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.SearchByCity(context.Background(), "")
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrBadRequest, appErr.Code)
	assert.Equal(t, "City parameter is required", appErr.Message)
}

func TestSearchByCityFallsBackToDefault(t *testing.T) {
	svc := NewService(newFakeRepo())

	docs, err := svc.SearchByCity(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Len(t, docs, 2, "empty result should fall back to the default city")
}

func TestGetUnknownDoctor(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Get(context.Background(), 99)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
