package users

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;index" json:"name"`
	Email    string `gorm:"size:50;uniqueIndex" json:"email"`
	Password string `gorm:"size:255" json:"-"`
}
