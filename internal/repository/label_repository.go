package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"recipe-be/internal/dbx"
	"recipe-be/internal/entities"
)

//go:generate mockgen -source=label_repository.go -destination=mocks/label_repository_mock.go -package=mocks

// LabelRepository defines owner-scoped operations on tags or ingredients.
// Every method takes the owner explicitly and never returns foreign rows.
type LabelRepository interface {
	ListByOwner(ctx context.Context, ownerID int64, assignedOnly bool) ([]entities.Label, error)
	Create(ctx context.Context, ownerID int64, name string) (*entities.Label, error)
	FindByIDs(ctx context.Context, ownerID int64, ids []int64) ([]entities.Label, error)
}

// labelTable describes where one kind of label and its recipe links live.
type labelTable struct {
	table      string // tags
	linkTable  string // recipe_tags
	linkColumn string // tag_id
}

var (
	tagTable        = labelTable{table: "tags", linkTable: "recipe_tags", linkColumn: "tag_id"}
	ingredientTable = labelTable{table: "ingredients", linkTable: "recipe_ingredients", linkColumn: "ingredient_id"}
)

type labelRepository struct {
	db dbx.DBTX
	t  labelTable
}

// NewTagRepository creates a repository over the tags table
func NewTagRepository(db dbx.DBTX) LabelRepository {
	return &labelRepository{db: db, t: tagTable}
}

// NewIngredientRepository creates a repository over the ingredients table
func NewIngredientRepository(db dbx.DBTX) LabelRepository {
	return &labelRepository{db: db, t: ingredientTable}
}

// ListByOwner returns the owner's labels by name, descending. With
// assignedOnly only labels linked to at least one recipe are returned.
func (r *labelRepository) ListByOwner(ctx context.Context, ownerID int64, assignedOnly bool) ([]entities.Label, error) {
	query := fmt.Sprintf(`SELECT l.id, l.user_id, l.name FROM %s l WHERE l.user_id = $1`, r.t.table)
	if assignedOnly {
		query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s x WHERE x.%s = l.id)`, r.t.linkTable, r.t.linkColumn)
	}
	query += ` ORDER BY l.name DESC, l.id DESC`

	return r.query(ctx, query, ownerID)
}

// Create inserts a label owned by ownerID
func (r *labelRepository) Create(ctx context.Context, ownerID int64, name string) (*entities.Label, error) {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, name) VALUES ($1, $2) RETURNING id, user_id, name`, r.t.table)

	var l entities.Label
	if err := r.db.QueryRowContext(ctx, query, ownerID, name).Scan(&l.ID, &l.UserID, &l.Name); err != nil {
		return nil, mapError(err)
	}
	return &l, nil
}

// FindByIDs returns the subset of ids owned by ownerID, ordered by ID
func (r *labelRepository) FindByIDs(ctx context.Context, ownerID int64, ids []int64) ([]entities.Label, error) {
	if len(ids) == 0 {
		return []entities.Label{}, nil
	}
	query := fmt.Sprintf(`SELECT id, user_id, name FROM %s WHERE user_id = $1 AND id = ANY($2) ORDER BY id`, r.t.table)

	return r.query(ctx, query, ownerID, pq.Array(ids))
}

func (r *labelRepository) query(ctx context.Context, query string, args ...any) ([]entities.Label, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	labels := make([]entities.Label, 0)
	for rows.Next() {
		var l entities.Label
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name); err != nil {
			return nil, mapError(err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return labels, nil
}
