package service

import (
	"context"
	"strings"

	"recipe-be/internal/entities"
	"recipe-be/internal/models"
	"recipe-be/internal/repository"
	"recipe-be/internal/validation"
)

// LabelService serves one kind of label (tags or ingredients) for its owner
type LabelService interface {
	List(ctx context.Context, ownerID int64, assignedOnly bool) ([]entities.Label, error)
	Create(ctx context.Context, ownerID int64, req *models.LabelRequest) (*entities.Label, error)
}

type labelService struct {
	repo repository.LabelRepository
}

func NewLabelService(repo repository.LabelRepository) LabelService {
	return &labelService{repo: repo}
}

// List returns the owner's labels. With assignedOnly set, only labels linked
// to at least one of the owner's recipes are returned.
func (s *labelService) List(ctx context.Context, ownerID int64, assignedOnly bool) ([]entities.Label, error) {
	return s.repo.ListByOwner(ctx, ownerID, assignedOnly)
}

// Create stores a label owned by ownerID
func (s *labelService) Create(ctx context.Context, ownerID int64, req *models.LabelRequest) (*entities.Label, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, ownerID, req.Name)
}
