package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackline/pkg/errors"
)

func newBlogFixture() *BlogUseCase {
	content := NewContentUseCase(&fakeContentRepo{}, &fakeContentAPI{})
	return NewBlogUseCase(content)
}

func TestBlogCreateDerivesSlugFromTitle(t *testing.T) {
	uc := newBlogFixture()

	post, err := uc.Create(context.Background(), CreateBlogPostInput{
		Title: "Choosing a Rack Server in 2026",
	})
	require.NoError(t, err)
	assert.Equal(t, "choosing-a-rack-server-in-2026", post.Slug)
	assert.NotEmpty(t, post.ID)
}

func TestBlogCreateDuplicateSlugRejected(t *testing.T) {
	uc := newBlogFixture()

	_, err := uc.Create(context.Background(), CreateBlogPostInput{Title: "Server Guide"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), CreateBlogPostInput{Title: "server guide"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestBlogSlugFixedAtCreation(t *testing.T) {
	uc := newBlogFixture()

	post, err := uc.Create(context.Background(), CreateBlogPostInput{Title: "Server Guide"})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), post.ID, CreateBlogPostInput{
		Title: "The Complete Server Guide",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Complete Server Guide", updated.Title)
	assert.Equal(t, "server-guide", updated.Slug)
}

func TestBlogDelete(t *testing.T) {
	uc := newBlogFixture()

	post, err := uc.Create(context.Background(), CreateBlogPostInput{Title: "Server Guide"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), post.ID))
	assert.Empty(t, uc.List())

	err = uc.Delete(context.Background(), post.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
