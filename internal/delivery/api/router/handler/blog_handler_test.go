package handler

import (
	"net/http"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	mockUsecase "petplace/internal/mocks/usecase"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBlogHandler_List(t *testing.T) {
	t.Run("parses filters", func(t *testing.T) {
		blogUC := mockUsecase.NewMockBlogUsecase(t)
		h := NewBlogHandler(BlogHandlerParams{BlogUC: blogUC})
		e := newTestEcho()
		e.GET("/api/blog/posts", h.List)

		blogUC.EXPECT().List(mock.Anything, &usecase.ListPostsInput{
			Status:  entity.PostStatusDraft,
			Tag:     "dogs",
			Sort:    entity.PostSortPopular,
			Page:    2,
			PerPage: 10,
		}).Return(&usecase.PostPage{
			Posts:      []*entity.BlogPost{},
			Pagination: entity.Pagination{Page: 2, PerPage: 10},
		}, nil)

		rec := doRequest(e, http.MethodGet, "/api/blog/posts?status=draft&tag=dogs&sort=popular&page=2&per_page=10", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("rejects unknown sort", func(t *testing.T) {
		h := NewBlogHandler(BlogHandlerParams{BlogUC: mockUsecase.NewMockBlogUsecase(t)})
		e := newTestEcho()
		e.GET("/api/blog/posts", h.List)

		rec := doRequest(e, http.MethodGet, "/api/blog/posts?sort=random", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "sort")
	})
}

func TestBlogHandler_Create(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h := NewBlogHandler(BlogHandlerParams{BlogUC: mockUsecase.NewMockBlogUsecase(t)})
		e := newTestEcho()
		e.POST("/api/blog/posts", h.Create)

		rec := doRequest(e, http.MethodPost, "/api/blog/posts", `{"title":"Hello"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("passes affiliate links through", func(t *testing.T) {
		blogUC := mockUsecase.NewMockBlogUsecase(t)
		h := NewBlogHandler(BlogHandlerParams{BlogUC: blogUC})
		authorID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(authorID))
		e.POST("/api/blog/posts", h.Create)

		blogUC.EXPECT().Create(mock.Anything, authorID, mock.MatchedBy(func(input *usecase.PostInput) bool {
			return *input.Title == "Best leashes" &&
				*input.Status == entity.PostStatusPublished &&
				len(input.AffiliateLinks) == 1 &&
				input.AffiliateLinks[0].CommissionType == entity.CommissionFixed
		})).Return(&entity.BlogPost{ID: uuid.New(), Title: "Best leashes"}, nil)

		rec := doRequest(e, http.MethodPost, "/api/blog/posts", `{
			"title":"Best leashes",
			"content":"Long read",
			"status":"published",
			"affiliate_links":[{
				"product_name":"Leash",
				"partner":"amazon",
				"original_url":"https://example.com/leash",
				"affiliate_url":"https://example.com/leash?tag=pp",
				"commission_rate":2.5,
				"commission_type":"fixed"
			}]
		}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Post created successfully", decodeEnvelope(t, rec).Message)
	})

	t.Run("validates nested links", func(t *testing.T) {
		h := NewBlogHandler(BlogHandlerParams{BlogUC: mockUsecase.NewMockBlogUsecase(t)})
		e := newTestEcho()
		e.Use(asUser(uuid.New()))
		e.POST("/api/blog/posts", h.Create)

		rec := doRequest(e, http.MethodPost, "/api/blog/posts",
			`{"title":"x","affiliate_links":[{"product_name":"Leash","partner":"amazon","original_url":"https://example.com","affiliate_url":"not a url"}]}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "affiliate_url")
	})
}

func TestBlogHandler_Update_NotAuthor(t *testing.T) {
	blogUC := mockUsecase.NewMockBlogUsecase(t)
	h := NewBlogHandler(BlogHandlerParams{BlogUC: blogUC})
	userID := uuid.New()
	postID := uuid.New()
	e := newTestEcho()
	e.Use(asUser(userID))
	e.PUT("/api/blog/posts/:id", h.Update)

	blogUC.EXPECT().Update(mock.Anything, userID, postID, mock.Anything).Return(nil, domainerrors.ErrPostNotFound)

	rec := doRequest(e, http.MethodPut, "/api/blog/posts/"+postID.String(), `{"title":"Edited"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "POST_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestBlogHandler_Delete(t *testing.T) {
	blogUC := mockUsecase.NewMockBlogUsecase(t)
	h := NewBlogHandler(BlogHandlerParams{BlogUC: blogUC})
	userID := uuid.New()
	postID := uuid.New()
	e := newTestEcho()
	e.Use(asUser(userID))
	e.DELETE("/api/blog/posts/:id", h.Delete)

	blogUC.EXPECT().Delete(mock.Anything, userID, postID).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/api/blog/posts/"+postID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Post deleted successfully", decodeEnvelope(t, rec).Message)
}

func TestBlogHandler_Like_MalformedID(t *testing.T) {
	h := NewBlogHandler(BlogHandlerParams{BlogUC: mockUsecase.NewMockBlogUsecase(t)})
	e := newTestEcho()
	e.POST("/api/blog/posts/:id/like", h.Like)

	rec := doRequest(e, http.MethodPost, "/api/blog/posts/abc/like", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decodeEnvelope(t, rec).Error.Details)
}
