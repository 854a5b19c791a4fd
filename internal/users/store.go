package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ponloe/postmesh-core/internal/database"
)

// Store owns all user persistence. Every write runs in its own transaction
// so a failed request leaves no partial state behind.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func (s *Store) Get(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &user, nil
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]User, error) {
	var list []User
	if err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Create hashes the plaintext password and inserts the user. A taken email
// is reported as database.ErrDuplicate, whether the lookup inside the
// transaction catches it or the unique index does.
func (s *Store) Create(ctx context.Context, name, email, password string) (*User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := User{Name: name, Email: email, Password: hashed}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return database.ErrDuplicate
		}
		return database.Translate(tx.Create(&user).Error)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user permanently. A user that still owns posts is
// refused with database.ErrHasPosts; the posts foreign key is RESTRICT, so
// the check keeps the refusal explicit instead of surfacing a raw
// constraint violation.
func (s *Store) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.First(&user, id).Error; err != nil {
			return database.Translate(err)
		}
		var owned int64
		if err := tx.Table("posts").Where("user_id = ?", id).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return database.ErrHasPosts
		}
		return tx.Delete(&user).Error
	})
}
