package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"recipe-be/internal/dbx"
	"recipe-be/internal/entities"
	"recipe-be/internal/filters"
)

//go:generate mockgen -source=recipe_repository.go -destination=mocks/recipe_repository_mock.go -package=mocks

// RecipeRepository defines owner-scoped recipe persistence. Rows of other
// owners behave as if they did not exist (common.ErrorNotFound).
type RecipeRepository interface {
	ListByOwner(ctx context.Context, ownerID int64, filter filters.RecipeFilter) ([]*entities.Recipe, error)
	FindByID(ctx context.Context, ownerID, id int64) (*entities.Recipe, error)
	// Create inserts the recipe and links the given tags and ingredients
	// atomically.
	Create(ctx context.Context, recipe *entities.Recipe, tagIDs, ingredientIDs []int64) (*entities.Recipe, error)
	// Update overwrites the scalar fields of the recipe. A nil relation
	// pointer leaves that relation untouched; otherwise the set is replaced.
	Update(ctx context.Context, recipe *entities.Recipe, tagIDs, ingredientIDs *[]int64) (*entities.Recipe, error)
	// SetImage stores a new image path and returns the previous one.
	SetImage(ctx context.Context, ownerID, id int64, image string) (*string, error)
	// Delete removes the recipe and returns its image path.
	Delete(ctx context.Context, ownerID, id int64) (*string, error)
}

type recipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *sql.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

const recipeColumns = `r.id, r.user_id, r.title, r.time_minutes, r.price, r.link, r.image, r.created_at, r.updated_at`

func scanRecipe(row rowScanner) (*entities.Recipe, error) {
	var rec entities.Recipe
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Title,
		&rec.TimeMinutes,
		&rec.Price,
		&rec.Link,
		&rec.Image,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Tags = []entities.Tag{}
	rec.Ingredients = []entities.Ingredient{}
	return &rec, nil
}

// ListByOwner returns the owner's recipes newest first. Tag IDs and
// ingredient IDs each match recipes linked to any of them; when both are
// given a recipe has to match both. EXISTS keeps every recipe listed once.
func (r *recipeRepository) ListByOwner(ctx context.Context, ownerID int64, filter filters.RecipeFilter) ([]*entities.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.user_id = $1`
	args := []any{ownerID}

	if filter.TagIDs != nil {
		args = append(args, pq.Array(filter.TagIDs))
		query += ` AND EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = r.id AND rt.tag_id = ANY($` + strconv.Itoa(len(args)) + `))`
	}
	if filter.IngredientIDs != nil {
		args = append(args, pq.Array(filter.IngredientIDs))
		query += ` AND EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = r.id AND ri.ingredient_id = ANY($` + strconv.Itoa(len(args)) + `))`
	}
	query += ` ORDER BY r.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	recipes := make([]*entities.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, mapError(err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	if err := loadRelations(ctx, r.db, ownerID, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByID returns the recipe with its relations if ownerID owns it
func (r *recipeRepository) FindByID(ctx context.Context, ownerID, id int64) (*entities.Recipe, error) {
	return findRecipe(ctx, r.db, ownerID, id)
}

func findRecipe(ctx context.Context, q dbx.DBTX, ownerID, id int64) (*entities.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1 AND r.user_id = $2`

	rec, err := scanRecipe(q.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		return nil, mapError(err)
	}
	if err := loadRelations(ctx, q, ownerID, []*entities.Recipe{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

// Create inserts a recipe and its links in one transaction
func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe, tagIDs, ingredientIDs []int64) (*entities.Recipe, error) {
	var created *entities.Recipe

	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO recipes (user_id, title, time_minutes, price, link)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Link,
		).Scan(&id)
		if err != nil {
			return mapError(err)
		}

		if err := linkLabels(ctx, tx, tagTable, id, recipe.UserID, tagIDs); err != nil {
			return err
		}
		if err := linkLabels(ctx, tx, ingredientTable, id, recipe.UserID, ingredientIDs); err != nil {
			return err
		}

		created, err = findRecipe(ctx, tx, recipe.UserID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites scalar fields and replaces the given relation sets in
// one transaction, so readers never observe a half-replaced set
func (r *recipeRepository) Update(ctx context.Context, recipe *entities.Recipe, tagIDs, ingredientIDs *[]int64) (*entities.Recipe, error) {
	var updated *entities.Recipe

	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE recipes
			SET title = $1, time_minutes = $2, price = $3, link = $4, updated_at = NOW()
			WHERE id = $5 AND user_id = $6`,
			recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Link, recipe.ID, recipe.UserID,
		)
		if err != nil {
			return mapError(err)
		}
		if err := expectOneRow(res); err != nil {
			return err
		}

		if tagIDs != nil {
			if err := replaceLinks(ctx, tx, tagTable, recipe.ID, recipe.UserID, *tagIDs); err != nil {
				return err
			}
		}
		if ingredientIDs != nil {
			if err := replaceLinks(ctx, tx, ingredientTable, recipe.ID, recipe.UserID, *ingredientIDs); err != nil {
				return err
			}
		}

		updated, err = findRecipe(ctx, tx, recipe.UserID, recipe.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetImage replaces the image path under a row lock and returns the old one
func (r *recipeRepository) SetImage(ctx context.Context, ownerID, id int64, image string) (*string, error) {
	var previous *string

	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		err := tx.QueryRowContext(ctx,
			`SELECT image FROM recipes WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			id, ownerID,
		).Scan(&previous)
		if err != nil {
			return mapError(err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE recipes SET image = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
			image, id, ownerID,
		)
		return mapError(err)
	})
	if err != nil {
		return nil, err
	}
	return previous, nil
}

// Delete removes a recipe owned by ownerID. Links go with it via cascade
func (r *recipeRepository) Delete(ctx context.Context, ownerID, id int64) (*string, error) {
	var image *string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM recipes WHERE id = $1 AND user_id = $2 RETURNING image`,
		id, ownerID,
	).Scan(&image)
	if err != nil {
		return nil, mapError(err)
	}
	return image, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return mapError(sql.ErrNoRows)
	}
	return nil
}

// linkLabels links the recipe to the given labels. Labels of other owners
// are never linked.
func linkLabels(ctx context.Context, tx dbx.DBTX, t labelTable, recipeID, ownerID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (recipe_id, %s)
		SELECT $1, l.id FROM %s l WHERE l.id = ANY($2) AND l.user_id = $3
		ON CONFLICT DO NOTHING`, t.linkTable, t.linkColumn, t.table)

	if _, err := tx.ExecContext(ctx, query, recipeID, pq.Array(ids), ownerID); err != nil {
		return mapError(err)
	}
	return nil
}

func replaceLinks(ctx context.Context, tx dbx.DBTX, t labelTable, recipeID, ownerID int64, ids []int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE recipe_id = $1`, t.linkTable)
	if _, err := tx.ExecContext(ctx, query, recipeID); err != nil {
		return mapError(err)
	}
	return linkLabels(ctx, tx, t, recipeID, ownerID, ids)
}

// loadRelations fills Tags and Ingredients of recipes with two queries.
func loadRelations(ctx context.Context, q dbx.DBTX, ownerID int64, recipes []*entities.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	byID := make(map[int64]*entities.Recipe, len(recipes))
	ids := make([]int64, 0, len(recipes))
	for _, rec := range recipes {
		byID[rec.ID] = rec
		ids = append(ids, rec.ID)
	}

	for _, t := range []labelTable{tagTable, ingredientTable} {
		query := fmt.Sprintf(`
			SELECT x.recipe_id, l.id, l.user_id, l.name
			FROM %s x
			JOIN %s l ON l.id = x.%s
			WHERE x.recipe_id = ANY($1) AND l.user_id = $2
			ORDER BY l.id`, t.linkTable, t.table, t.linkColumn)

		rows, err := q.QueryContext(ctx, query, pq.Array(ids), ownerID)
		if err != nil {
			return mapError(err)
		}

		for rows.Next() {
			var recipeID int64
			var l entities.Label
			if err := rows.Scan(&recipeID, &l.ID, &l.UserID, &l.Name); err != nil {
				rows.Close()
				return mapError(err)
			}
			rec, ok := byID[recipeID]
			if !ok {
				continue
			}
			if t == tagTable {
				rec.Tags = append(rec.Tags, l)
			} else {
				rec.Ingredients = append(rec.Ingredients, l)
			}
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return mapError(err)
		}
	}
	return nil
}
