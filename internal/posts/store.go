package posts

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ponloe/postmesh-core/internal/database"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// UpdateInput carries the fields of a post update. Nil fields are left
// untouched in storage.
type UpdateInput struct {
	Title     *string
	Content   *string
	Published *bool
}

func (s *Store) Get(ctx context.Context, id uint) (*Post, error) {
	var post Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &post, nil
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]Post, error) {
	var list []Post
	if err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Create inserts the post, populating CreatedAt at write time. The owner is
// not looked up here; an absent owner fails the foreign key and surfaces as
// a plain persistence failure.
func (s *Store) Create(ctx context.Context, post *Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
}

// Update overwrites exactly the fields set in the input and re-reads the
// row so callers see what was persisted.
func (s *Store) Update(ctx context.Context, id uint, in UpdateInput) (*Post, error) {
	var post Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return database.Translate(err)
		}

		updates := map[string]interface{}{}
		if in.Title != nil {
			updates["title"] = *in.Title
		}
		if in.Content != nil {
			updates["content"] = *in.Content
		}
		if in.Published != nil {
			updates["published"] = *in.Published
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&post, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Store) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post Post
		if err := tx.First(&post, id).Error; err != nil {
			return database.Translate(err)
		}
		return tx.Delete(&post).Error
	})
}
