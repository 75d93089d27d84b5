package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rackline/internal/domain/entity"
	"rackline/pkg/errors"
	"rackline/pkg/utils"
)

// BlogUseCase manages the blogPosts content section.
type BlogUseCase struct {
	content *ContentUseCase
}

func NewBlogUseCase(content *ContentUseCase) *BlogUseCase {
	return &BlogUseCase{content: content}
}

type CreateBlogPostInput struct {
	Title     string
	Slug      string
	Excerpt   string
	Body      string
	Image     string
	Author    string
	Published bool
	Tags      []string
}

func (uc *BlogUseCase) List() []entity.BlogPost {
	return uc.content.State().BlogPosts
}

func (uc *BlogUseCase) Get(id string) (*entity.BlogPost, error) {
	for _, post := range uc.content.State().BlogPosts {
		if post.ID == id {
			return &post, nil
		}
	}
	return nil, errors.NotFound("Blog post", nil)
}

// Create derives the slug from the explicit slug input or the title.
// The slug is fixed at creation; editing the title later does not
// change it.
func (uc *BlogUseCase) Create(ctx context.Context, input CreateBlogPostInput) (*entity.BlogPost, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("Blog post title is required", nil)
	}
	slug := input.Slug
	if slug == "" {
		slug = input.Title
	}
	slug = utils.Slugify(slug)

	posts := uc.content.State().BlogPosts
	for _, post := range posts {
		if post.Slug == slug {
			return nil, errors.Conflict("Blog post with this slug already exists")
		}
	}

	now := time.Now()
	post := entity.BlogPost{
		ID:        uuid.NewString(),
		Slug:      slug,
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Body:      input.Body,
		Image:     input.Image,
		Author:    input.Author,
		Published: input.Published,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.replaceAll(ctx, append(posts, post)); err != nil {
		return nil, err
	}
	return &post, nil
}

func (uc *BlogUseCase) Update(ctx context.Context, id string, input CreateBlogPostInput) (*entity.BlogPost, error) {
	posts := uc.content.State().BlogPosts
	var updated *entity.BlogPost
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		if input.Title != "" {
			posts[i].Title = input.Title
		}
		posts[i].Excerpt = input.Excerpt
		posts[i].Body = input.Body
		posts[i].Image = input.Image
		posts[i].Author = input.Author
		posts[i].Published = input.Published
		posts[i].Tags = input.Tags
		posts[i].UpdatedAt = time.Now()
		updated = &posts[i]
		break
	}
	if updated == nil {
		return nil, errors.NotFound("Blog post", nil)
	}

	if err := uc.replaceAll(ctx, posts); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *BlogUseCase) Delete(ctx context.Context, id string) error {
	posts := uc.content.State().BlogPosts
	out := make([]entity.BlogPost, 0, len(posts))
	found := false
	for _, post := range posts {
		if post.ID == id {
			found = true
			continue
		}
		out = append(out, post)
	}
	if !found {
		return errors.NotFound("Blog post", nil)
	}
	return uc.replaceAll(ctx, out)
}

func (uc *BlogUseCase) replaceAll(ctx context.Context, posts []entity.BlogPost) error {
	raw, err := MarshalSection(posts)
	if err != nil {
		return err
	}
	_, err = uc.content.Update(ctx, entity.ContentPatch{entity.SectionBlogPosts: raw})
	return err
}
