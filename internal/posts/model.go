package posts

import (
	"time"

	"github.com/Ponloe/postmesh-core/internal/users"
)

type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:100;index" json:"title"`
	Content   string     `gorm:"size:255" json:"content"`
	Published bool       `gorm:"not null" json:"published"`
	CreatedAt time.Time  `json:"created_at"`
	UserID    uint       `gorm:"index" json:"user_id"`
	User      users.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
