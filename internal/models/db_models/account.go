package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	City         string
	Country      string
	AvatarURL    string
	Role         string `gorm:"default:user"`

	Trips []Trip `gorm:"foreignKey:AccountID"`
}
