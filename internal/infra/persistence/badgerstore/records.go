package badgerstore

import (
	"time"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// Stored shapes. They are decoupled from the entities so the on-disk format can evolve on its own.

type bookRecord struct {
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
	EbookAccess         string    `json:"ebook_access,omitempty"`
	EditionCount        int       `json:"edition_count,omitempty"`
	Format              string    `json:"format,omitempty"`
	FirstSentence       string    `json:"first_sentence,omitempty"`
	NumberOfPages       int       `json:"number_of_pages,omitempty"`
	RatingsAverage      float64   `json:"ratings_average,omitempty"`
	RatingsCount        int       `json:"ratings_count,omitempty"`
	WantToReadCount     int       `json:"want_to_read_count,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type userRecord struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type profileRecord struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	DisplayName       string            `json:"display_name,omitempty"`
	Bio               string            `json:"bio,omitempty"`
	ImageURL          string            `json:"image_url,omitempty"`
	FavoriteGenres    []string          `json:"favorite_genres,omitempty"`
	ReadingGoal       int               `json:"reading_goal,omitempty"`
	PreferredLanguage string            `json:"preferred_language,omitempty"`
	IsPublic          bool              `json:"is_public"`
	SocialLinks       map[string]string `json:"social_links,omitempty"`
	Location          string            `json:"location,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type wishlistRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	BookID      uuid.UUID `json:"book_id"`
	Description string    `json:"description,omitempty"`
	Priority    int       `json:"priority"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type reviewRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BookID    uuid.UUID `json:"book_id"`
	Content   string    `json:"content"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *bookRecord) toDomain() *entity.Book {
	return &entity.Book{
		ID:                  r.ID,
		ExternalKey:         r.ExternalKey,
		Title:               r.Title,
		Subtitle:            r.Subtitle,
		AlternativeTitle:    r.AlternativeTitle,
		AlternativeSubtitle: r.AlternativeSubtitle,
		Author:              r.Author,
		FirstPublishYear:    r.FirstPublishYear,
		Platform:            r.Platform,
		CoverID:             r.CoverID,
		EbookAccess:         r.EbookAccess,
		EditionCount:        r.EditionCount,
		Format:              r.Format,
		FirstSentence:       r.FirstSentence,
		NumberOfPages:       r.NumberOfPages,
		RatingsAverage:      r.RatingsAverage,
		RatingsCount:        r.RatingsCount,
		WantToReadCount:     r.WantToReadCount,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func fromBook(b *entity.Book) *bookRecord {
	return &bookRecord{
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
		EbookAccess:         b.EbookAccess,
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

func (r *userRecord) toDomain() *entity.User {
	return &entity.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func fromUser(u *entity.User) *userRecord {
	return &userRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *profileRecord) toDomain() *entity.UserProfile {
	return &entity.UserProfile{
		ID:                r.ID,
		UserID:            r.UserID,
		DisplayName:       r.DisplayName,
		Bio:               r.Bio,
		ImageURL:          r.ImageURL,
		FavoriteGenres:    r.FavoriteGenres,
		ReadingGoal:       r.ReadingGoal,
		PreferredLanguage: r.PreferredLanguage,
		IsPublic:          r.IsPublic,
		SocialLinks:       r.SocialLinks,
		Location:          r.Location,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func fromProfile(p *entity.UserProfile) *profileRecord {
	return &profileRecord{
		ID:                p.ID,
		UserID:            p.UserID,
		DisplayName:       p.DisplayName,
		Bio:               p.Bio,
		ImageURL:          p.ImageURL,
		FavoriteGenres:    p.FavoriteGenres,
		ReadingGoal:       p.ReadingGoal,
		PreferredLanguage: p.PreferredLanguage,
		IsPublic:          p.IsPublic,
		SocialLinks:       p.SocialLinks,
		Location:          p.Location,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r *wishlistRecord) toDomain() *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:          r.ID,
		UserID:      r.UserID,
		BookID:      r.BookID,
		Description: r.Description,
		Priority:    r.Priority,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromWishlistItem(w *entity.WishlistItem) *wishlistRecord {
	return &wishlistRecord{
		ID:          w.ID,
		UserID:      w.UserID,
		BookID:      w.BookID,
		Description: w.Description,
		Priority:    w.Priority,
		IsPublic:    w.IsPublic,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (r *reviewRecord) toDomain() *entity.Review {
	return &entity.Review{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Content:   r.Content,
		IsPublic:  r.IsPublic,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromReview(r *entity.Review) *reviewRecord {
	return &reviewRecord{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Content:   r.Content,
		IsPublic:  r.IsPublic,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
