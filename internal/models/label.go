package models

import "recipe-be/internal/entities"

// LabelRequest is the body for creating a tag or an ingredient
type LabelRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// LabelResponse is the wire shape of a tag or an ingredient
type LabelResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewLabelResponse(l *entities.Label) LabelResponse {
	return LabelResponse{ID: l.ID, Name: l.Name}
}

func NewLabelResponses(labels []entities.Label) []LabelResponse {
	out := make([]LabelResponse, 0, len(labels))
	for i := range labels {
		out = append(out, NewLabelResponse(&labels[i]))
	}
	return out
}
