package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/guardianpro/guardianpro-api/internal/models"
)

// NewsRepository handles data access for news posts.
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository creates a new NewsRepository.
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// List returns all news posts, newest first.
func (r *NewsRepository) List() ([]models.NewsPost, error) {
	const q = `
		SELECT id, title, content, excerpt, image_url, is_published, published_at, created_at, updated_at
		FROM news_posts
		ORDER BY created_at DESC`

	posts := []models.NewsPost{}
	if err := r.db.Select(&posts, q); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts a new post. published_at is stamped when the post is
// created as published.
func (r *NewsRepository) Create(p *models.NewsPost) error {
	const q = `
		INSERT INTO news_posts (title, content, excerpt, image_url, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, CASE WHEN $5 THEN NOW() END)
		RETURNING id, published_at, created_at, updated_at`

	return r.db.QueryRow(q, p.Title, p.Content, p.Excerpt, p.ImageURL, p.IsPublished).
		Scan(&p.ID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
}

// NewsUpdate carries the updatable fields of a news post. Nil fields are
// left unchanged.
type NewsUpdate struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Excerpt     *string `json:"excerpt"`
	ImageURL    *string `json:"image_url"`
	IsPublished *bool   `json:"is_published"`
}

// Update applies a partial update and returns the updated row. Publishing a
// draft stamps published_at; the stamp is kept when unpublishing.
func (r *NewsRepository) Update(id string, upd *NewsUpdate) (*models.NewsPost, error) {
	const q = `
		UPDATE news_posts SET
			title        = COALESCE($2, title),
			content      = COALESCE($3, content),
			excerpt      = COALESCE($4, excerpt),
			image_url    = COALESCE($5, image_url),
			is_published = COALESCE($6, is_published),
			published_at = CASE
				WHEN COALESCE($6, is_published) AND published_at IS NULL THEN NOW()
				ELSE published_at
			END,
			updated_at   = NOW()
		WHERE id = $1
		RETURNING id, title, content, excerpt, image_url, is_published, published_at, created_at, updated_at`

	var p models.NewsPost
	if err := r.db.Get(&p, q, id, upd.Title, upd.Content, upd.Excerpt, upd.ImageURL, upd.IsPublished); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a post by ID and reports whether a row was deleted.
func (r *NewsRepository) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM news_posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the total number of news posts.
func (r *NewsRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM news_posts`)
	return n, err
}
