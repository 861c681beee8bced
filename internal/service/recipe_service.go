package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"recipe-be/internal/common"
	"recipe-be/internal/entities"
	"recipe-be/internal/filters"
	"recipe-be/internal/logging"
	"recipe-be/internal/models"
	"recipe-be/internal/repository"
	"recipe-be/internal/storage"
	"recipe-be/internal/validation"
)

const (
	invalidImageMessage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	imageTooLargeFormat = "Ensure the file is at most %d bytes."
	badExtensionFormat  = `File extension "%s" is not allowed. Allowed extensions are: gif, jpeg, jpg, png, webp.`
)

// RecipeService defines the recipe business logic. Every method is scoped to
// ownerID; recipes owned by someone else behave as if they did not exist.
type RecipeService interface {
	List(ctx context.Context, ownerID int64, filter filters.RecipeFilter) ([]*entities.Recipe, error)
	Get(ctx context.Context, ownerID, id int64) (*entities.Recipe, error)
	Create(ctx context.Context, ownerID int64, req *models.RecipeRequest) (*entities.Recipe, error)
	Update(ctx context.Context, ownerID, id int64, req *models.RecipeRequest, partial bool) (*entities.Recipe, error)
	Delete(ctx context.Context, ownerID, id int64) error
	UploadImage(ctx context.Context, ownerID, id int64, filename string, r io.Reader) (string, error)
	ImageURL(path string) string
}

type recipeService struct {
	recipes        repository.RecipeRepository
	tags           repository.LabelRepository
	ingredients    repository.LabelRepository
	storage        storage.Storage
	maxUploadBytes int64
	log            logging.Logger
}

func NewRecipeService(
	recipes repository.RecipeRepository,
	tags, ingredients repository.LabelRepository,
	store storage.Storage,
	maxUploadBytes int64,
	log logging.Logger,
) RecipeService {
	return &recipeService{
		recipes:        recipes,
		tags:           tags,
		ingredients:    ingredients,
		storage:        store,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

func (s *recipeService) List(ctx context.Context, ownerID int64, filter filters.RecipeFilter) ([]*entities.Recipe, error) {
	return s.recipes.ListByOwner(ctx, ownerID, filter)
}

func (s *recipeService) Get(ctx context.Context, ownerID, id int64) (*entities.Recipe, error) {
	return s.recipes.FindByID(ctx, ownerID, id)
}

// Create stores a recipe for ownerID regardless of the payload
func (s *recipeService) Create(ctx context.Context, ownerID int64, req *models.RecipeRequest) (*entities.Recipe, error) {
	if err := req.Validate(false); err != nil {
		return nil, err
	}

	tagIDs := idsOrEmpty(req.Tags)
	ingredientIDs := idsOrEmpty(req.Ingredients)
	if err := s.checkLabels(ctx, ownerID, tagIDs, ingredientIDs); err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{UserID: ownerID}
	applyScalars(recipe, req)

	created, err := s.recipes.Create(ctx, recipe, tagIDs, ingredientIDs)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "recipe created", "recipe_id", created.ID, "user_id", ownerID)
	return created, nil
}

// Update merges req into the stored recipe. A partial update changes only the
// present fields and relation sets; a full update resets absent relation sets
// and the link to empty.
func (s *recipeService) Update(ctx context.Context, ownerID, id int64, req *models.RecipeRequest, partial bool) (*entities.Recipe, error) {
	if err := req.Validate(partial); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	tagIDs, ingredientIDs := req.Tags, req.Ingredients
	if !partial {
		empty := ""
		if req.Link == nil {
			req.Link = &empty
		}
		t, i := idsOrEmpty(tagIDs), idsOrEmpty(ingredientIDs)
		tagIDs, ingredientIDs = &t, &i
	}

	if err := s.checkLabels(ctx, ownerID, derefIDs(tagIDs), derefIDs(ingredientIDs)); err != nil {
		return nil, err
	}

	applyScalars(recipe, req)

	return s.recipes.Update(ctx, recipe, tagIDs, ingredientIDs)
}

// Delete removes the recipe and, best effort, its stored image
func (s *recipeService) Delete(ctx context.Context, ownerID, id int64) error {
	image, err := s.recipes.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if image != nil {
		s.removeImage(ctx, *image)
	}
	s.log.Info(ctx, "recipe deleted", "recipe_id", id, "user_id", ownerID)
	return nil
}

// UploadImage validates the payload as an image, stores it under a fresh
// uploads/recipe path and attaches it to the recipe. The previous image, if
// any, is removed. It returns the stored path.
func (s *recipeService) UploadImage(ctx context.Context, ownerID, id int64, filename string, r io.Reader) (string, error) {
	if _, err := s.recipes.FindByID(ctx, ownerID, id); err != nil {
		return "", err
	}

	if ext := storage.Extension(filename); ext != "" && !storage.ImageExtensions[ext] {
		return "", validation.Field("image", fmt.Sprintf(badExtensionFormat, ext))
	}

	data, format, err := storage.ReadImage(r, s.maxUploadBytes)
	switch {
	case errors.Is(err, common.ErrorInvalidImage):
		return "", validation.Field("image", invalidImageMessage)
	case errors.Is(err, common.ErrorFileTooLarge):
		return "", validation.Field("image", fmt.Sprintf(imageTooLargeFormat, s.maxUploadBytes))
	case err != nil:
		return "", err
	}

	path := storage.RecipeImagePath(filename)
	if err := s.storage.Save(ctx, path, data, storage.ContentTypes[format]); err != nil {
		return "", fmt.Errorf("saving image: %w", err)
	}

	previous, err := s.recipes.SetImage(ctx, ownerID, id, path)
	if err != nil {
		s.removeImage(ctx, path)
		return "", err
	}
	if previous != nil && *previous != path {
		s.removeImage(ctx, *previous)
	}

	s.log.Info(ctx, "recipe image uploaded", "recipe_id", id, "path", path)
	return path, nil
}

func (s *recipeService) ImageURL(path string) string {
	return s.storage.URL(path)
}

func (s *recipeService) removeImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		s.log.Warn(ctx, "image cleanup failed", "path", path, "error", err)
	}
}

// checkLabels reports every referenced tag or ingredient the owner does not
// have as a field error.
func (s *recipeService) checkLabels(ctx context.Context, ownerID int64, tagIDs, ingredientIDs []int64) error {
	errs := validation.Errors{}
	if err := checkOwned(ctx, s.tags, "tags", ownerID, tagIDs, errs); err != nil {
		return err
	}
	if err := checkOwned(ctx, s.ingredients, "ingredients", ownerID, ingredientIDs, errs); err != nil {
		return err
	}
	return errs.OrNil()
}

func checkOwned(ctx context.Context, repo repository.LabelRepository, field string, ownerID int64, ids []int64, errs validation.Errors) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := repo.FindByIDs(ctx, ownerID, ids)
	if err != nil {
		return err
	}

	owned := make(map[int64]struct{}, len(found))
	for _, l := range found {
		owned[l.ID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := owned[id]; !ok {
			errs.Add(field, fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, id))
		}
	}
	return nil
}

func applyScalars(recipe *entities.Recipe, req *models.RecipeRequest) {
	if req.Title != nil {
		recipe.Title = strings.TrimSpace(*req.Title)
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = strings.TrimSpace(*req.Link)
	}
}

func idsOrEmpty(ids *[]int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return *ids
}

func derefIDs(ids *[]int64) []int64 {
	if ids == nil {
		return nil
	}
	return *ids
}
