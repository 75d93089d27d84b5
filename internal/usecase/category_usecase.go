package usecase

import (
	"context"
	"time"

	"rackline/internal/domain/entity"
	"rackline/pkg/errors"
	"rackline/pkg/utils"
)

// CategoryUseCase manages the categories content section. Categories
// live inside the aggregate content document, so every mutation goes
// through the content synchronizer as an array-replace patch.
type CategoryUseCase struct {
	content *ContentUseCase
}

func NewCategoryUseCase(content *ContentUseCase) *CategoryUseCase {
	return &CategoryUseCase{content: content}
}

type CreateCategoryInput struct {
	ID              string
	Name            string
	Description     string
	Image           string
	Active          bool
	MetaTitle       string
	MetaDescription string
}

func (uc *CategoryUseCase) List() []entity.Category {
	return uc.content.State().Categories
}

func (uc *CategoryUseCase) Get(id string) (*entity.Category, error) {
	for _, cat := range uc.content.State().Categories {
		if cat.ID == id {
			return &cat, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

// Create derives the category id from the name when none is supplied
// and rejects duplicates of the derived id.
func (uc *CategoryUseCase) Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	id := input.ID
	if id == "" {
		id = utils.Slugify(input.Name)
	}
	if id == "" {
		return nil, errors.BadRequest("Category name is required", nil)
	}

	categories := uc.content.State().Categories
	for _, cat := range categories {
		if cat.ID == id {
			return nil, errors.Conflict("Category with this id already exists")
		}
	}

	now := time.Now()
	category := entity.Category{
		ID:              id,
		Name:            input.Name,
		Description:     input.Description,
		Image:           input.Image,
		Active:          input.Active,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.replaceAll(ctx, append(categories, category)); err != nil {
		return nil, err
	}
	return &category, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, id string, input CreateCategoryInput) (*entity.Category, error) {
	categories := uc.content.State().Categories
	var updated *entity.Category
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		if input.Name != "" {
			categories[i].Name = input.Name
		}
		categories[i].Description = input.Description
		categories[i].Image = input.Image
		categories[i].Active = input.Active
		categories[i].MetaTitle = input.MetaTitle
		categories[i].MetaDescription = input.MetaDescription
		categories[i].UpdatedAt = time.Now()
		updated = &categories[i]
		break
	}
	if updated == nil {
		return nil, errors.NotFound("Category", nil)
	}

	if err := uc.replaceAll(ctx, categories); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the category. Products referencing the category by
// name are left as they are; there is no cascade.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	categories := uc.content.State().Categories
	out := make([]entity.Category, 0, len(categories))
	found := false
	for _, cat := range categories {
		if cat.ID == id {
			found = true
			continue
		}
		out = append(out, cat)
	}
	if !found {
		return errors.NotFound("Category", nil)
	}
	return uc.replaceAll(ctx, out)
}

func (uc *CategoryUseCase) replaceAll(ctx context.Context, categories []entity.Category) error {
	raw, err := MarshalSection(categories)
	if err != nil {
		return err
	}
	_, err = uc.content.Update(ctx, entity.ContentPatch{entity.SectionCategories: raw})
	return err
}
