package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a security service offering shown on the marketing site.
type Service struct {
	ID          string           `db:"id" json:"id"`
	Title       string           `db:"title" json:"title"`
	Description string           `db:"description" json:"description"`
	Price       *decimal.Decimal `db:"price" json:"price,omitempty"`
	ImageURL    *string          `db:"image_url" json:"image_url,omitempty"`
	IsActive    bool             `db:"is_active" json:"is_active"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}

// NewsPost is a news article on the marketing site.
type NewsPost struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Content     string     `db:"content" json:"content"`
	Excerpt     *string    `db:"excerpt" json:"excerpt,omitempty"`
	ImageURL    *string    `db:"image_url" json:"image_url,omitempty"`
	IsPublished bool       `db:"is_published" json:"is_published"`
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// FAQ is a frequently-asked question, ordered on the site by SortOrder.
type FAQ struct {
	ID        string    `db:"id" json:"id"`
	Question  string    `db:"question" json:"question"`
	Answer    string    `db:"answer" json:"answer"`
	Category  *string   `db:"category" json:"category,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
