package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"
)

// --- Requests ---

// ImportBookRequest names the work to import.
type ImportBookRequest struct {
	Key string `json:"key" validate:"required"`
}

// ImportSearchRequest runs a remote search and imports the results.
type ImportSearchRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"gte=0,lte=100"`
}

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpsertProfileRequest is the body of PUT /users/:userId/profile. Omitted fields are left unchanged.
type UpsertProfileRequest struct {
	DisplayName       *string           `json:"display_name" validate:"omitempty,max=100"`
	Bio               *string           `json:"bio" validate:"omitempty,max=2000"`
	ImageURL          *string           `json:"image_url" validate:"omitempty,url"`
	FavoriteGenres    []string          `json:"favorite_genres" validate:"omitempty,max=20"`
	ReadingGoal       *int              `json:"reading_goal" validate:"omitempty,gte=0,lte=1000"`
	PreferredLanguage *string           `json:"preferred_language" validate:"omitempty,max=35"`
	IsPublic          *bool             `json:"is_public"`
	SocialLinks       map[string]string `json:"social_links"`
	Location          *string           `json:"location" validate:"omitempty,max=100"`
}

// AddWishlistItemRequest names the book by id or by external key.
type AddWishlistItemRequest struct {
	BookID      string `json:"book_id" validate:"required_without=ExternalKey,omitempty,uuid"`
	ExternalKey string `json:"external_key" validate:"required_without=BookID"`
	Description string `json:"description" validate:"max=1000"`
	Priority    int    `json:"priority" validate:"gte=0"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateWishlistItemRequest is the body of PATCH /users/:userId/wishlist/:bookId.
type UpdateWishlistItemRequest struct {
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Priority    *int    `json:"priority" validate:"omitempty,gte=0"`
	IsPublic    *bool   `json:"is_public"`
}

// WriteReviewRequest names the book by id or by external key.
type WriteReviewRequest struct {
	BookID      string `json:"book_id" validate:"required_without=ExternalKey,omitempty,uuid"`
	ExternalKey string `json:"external_key" validate:"required_without=BookID"`
	Content     string `json:"content" validate:"required,max=10000"`
	IsPublic    bool   `json:"is_public"`
}

// --- Responses ---

// BookResponse is the wire form of a catalog book.
type BookResponse struct {
	ID                  uuid.UUID `json:"id"`
	ExternalKey         string    `json:"external_key,omitempty"`
	Title               string    `json:"title"`
	Subtitle            string    `json:"subtitle,omitempty"`
	AlternativeTitle    string    `json:"alternative_title,omitempty"`
	AlternativeSubtitle string    `json:"alternative_subtitle,omitempty"`
	Author              string    `json:"author,omitempty"`
	FirstPublishYear    int       `json:"first_publish_year,omitempty"`
	Platform            string    `json:"platform,omitempty"`
	CoverID             int64     `json:"cover_id,omitempty"`
	CoverURL            string    `json:"cover_url,omitempty"`
	EbookAccess         string    `json:"ebook_access,omitempty"`
	HasEbook            bool      `json:"has_ebook"`
	EditionCount        int       `json:"edition_count"`
	Format              string    `json:"format,omitempty"`
	FirstSentence       string    `json:"first_sentence,omitempty"`
	NumberOfPages       int       `json:"number_of_pages,omitempty"`
	RatingsAverage      float64   `json:"ratings_average"`
	RatingsCount        int       `json:"ratings_count"`
	WantToReadCount     int       `json:"want_to_read_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UserResponse never carries credential material.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse is the wire form of a user profile.
type ProfileResponse struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	Username          string            `json:"username,omitempty"`
	DisplayName       string            `json:"display_name"`
	Bio               string            `json:"bio"`
	ImageURL          string            `json:"image_url,omitempty"`
	FavoriteGenres    []string          `json:"favorite_genres"`
	ReadingGoal       int               `json:"reading_goal"`
	PreferredLanguage string            `json:"preferred_language,omitempty"`
	IsPublic          bool              `json:"is_public"`
	SocialLinks       map[string]string `json:"social_links"`
	Location          string            `json:"location,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// WishlistItemResponse embeds the book when it is still in the catalog.
type WishlistItemResponse struct {
	ID          uuid.UUID     `json:"id"`
	BookID      uuid.UUID     `json:"book_id"`
	Book        *BookResponse `json:"book,omitempty"`
	Description string        `json:"description"`
	Priority    int           `json:"priority"`
	IsPublic    bool          `json:"is_public"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ReviewResponse is the wire form of a review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BookID    uuid.UUID `json:"book_id"`
	Content   string    `json:"content"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Mapping ---

func coverURL(coversBaseURL string, coverID int64) string {
	if coverID <= 0 || coversBaseURL == "" {
		return ""
	}

	return fmt.Sprintf("%s/b/id/%d-M.jpg", strings.TrimRight(coversBaseURL, "/"), coverID)
}

func toBookResponse(b *entity.Book, coversBaseURL string) *BookResponse {
	if b == nil {
		return nil
	}

	return &BookResponse{
		ID:                  b.ID,
		ExternalKey:         b.ExternalKey,
		Title:               b.Title,
		Subtitle:            b.Subtitle,
		AlternativeTitle:    b.AlternativeTitle,
		AlternativeSubtitle: b.AlternativeSubtitle,
		Author:              b.Author,
		FirstPublishYear:    b.FirstPublishYear,
		Platform:            b.Platform,
		CoverID:             b.CoverID,
		CoverURL:            coverURL(coversBaseURL, b.CoverID),
		EbookAccess:         b.EbookAccess,
		HasEbook:            b.HasEbook(),
		EditionCount:        b.EditionCount,
		Format:              b.Format,
		FirstSentence:       b.FirstSentence,
		NumberOfPages:       b.NumberOfPages,
		RatingsAverage:      b.RatingsAverage,
		RatingsCount:        b.RatingsCount,
		WantToReadCount:     b.WantToReadCount,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func toBookResponses(books []*entity.Book, coversBaseURL string) []*BookResponse {
	out := make([]*BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b, coversBaseURL))
	}

	return out
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toProfileResponse(p *entity.UserProfile) *ProfileResponse {
	genres := p.FavoriteGenres
	if genres == nil {
		genres = []string{}
	}
	links := p.SocialLinks
	if links == nil {
		links = map[string]string{}
	}

	return &ProfileResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		Username:          p.Username,
		DisplayName:       p.DisplayName,
		Bio:               p.Bio,
		ImageURL:          p.ImageURL,
		FavoriteGenres:    genres,
		ReadingGoal:       p.ReadingGoal,
		PreferredLanguage: p.PreferredLanguage,
		IsPublic:          p.IsPublic,
		SocialLinks:       links,
		Location:          p.Location,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toWishlistItemResponse(item *entity.WishlistItem, coversBaseURL string) *WishlistItemResponse {
	return &WishlistItemResponse{
		ID:          item.ID,
		BookID:      item.BookID,
		Book:        toBookResponse(item.Book, coversBaseURL),
		Description: item.Description,
		Priority:    item.Priority,
		IsPublic:    item.IsPublic,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toReviewResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Content:   r.Content,
		IsPublic:  r.IsPublic,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *UpsertProfileRequest) toInput() *usecase.UpsertProfileInput {
	return &usecase.UpsertProfileInput{
		DisplayName:       r.DisplayName,
		Bio:               r.Bio,
		ImageURL:          r.ImageURL,
		FavoriteGenres:    r.FavoriteGenres,
		ReadingGoal:       r.ReadingGoal,
		PreferredLanguage: r.PreferredLanguage,
		IsPublic:          r.IsPublic,
		SocialLinks:       r.SocialLinks,
		Location:          r.Location,
	}
}

// optionalUUID parses an id that validation already accepted as empty or well-formed.
func optionalUUID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidArgument.WrapMessage(name + " must be a valid UUID")
	}

	return id, nil
}
