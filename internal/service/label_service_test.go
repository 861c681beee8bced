package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"recipe-be/internal/entities"
	"recipe-be/internal/models"
	"recipe-be/internal/repository/mocks"
	"recipe-be/internal/validation"
)

func TestLabelService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLabelRepository(ctrl)
	svc := NewLabelService(repo)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, int64(1), "Vegan").Return(&entities.Label{ID: 3, UserID: 1, Name: "Vegan"}, nil)

	label, err := svc.Create(ctx, 1, &models.LabelRequest{Name: "  Vegan "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), label.ID)
}

func TestLabelService_Create_BlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewLabelService(mocks.NewMockLabelRepository(ctrl))

	_, err := svc.Create(context.Background(), 1, &models.LabelRequest{Name: "   "})
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr, "name")
}

func TestLabelService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLabelRepository(ctrl)
	svc := NewLabelService(repo)
	ctx := context.Background()

	labels := []entities.Label{{ID: 2, Name: "Salt"}}
	repo.EXPECT().ListByOwner(ctx, int64(1), true).Return(labels, nil)

	got, err := svc.List(ctx, 1, true)
	require.NoError(t, err)
	assert.Equal(t, labels, got)
}
