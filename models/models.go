package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"time"
)

type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type User struct {
	BaseModel
	Name  string `gorm:"size:255;not null;index" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	Posts    []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
	Comments []Comment `gorm:"foreignKey:AuthorID" json:"comments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

type Post struct {
	BaseModel
	AuthorID    uint             `gorm:"not null;index" json:"authorID"`
	Title       string           `gorm:"size:255;not null;index" json:"title"`
	Slug        string           `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Body        string           `gorm:"type:text" json:"body"`
	Price       *decimal.Decimal `gorm:"type:decimal(38,18)" json:"price"` // nil for free posts
	Meta        *string          `gorm:"type:json" json:"meta"`
	Status      string           `gorm:"size:50;default:'draft';index" json:"status"` // 'draft', 'published', 'archived'
	PublishedAt *time.Time       `gorm:"index" json:"publishedAt"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	BaseModel
	PostID      uint       `gorm:"not null;index" json:"postID"`
	AuthorID    uint       `gorm:"not null;index" json:"authorID"`
	Body        string     `gorm:"type:text;not null" json:"body"`
	Status      string     `gorm:"size:50;default:'pending';index" json:"status"` // 'pending', 'published', 'rejected'
	PublishedAt *time.Time `gorm:"index" json:"publishedAt"`

	Post   *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
