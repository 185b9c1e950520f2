package models

const (
	LangEnglish = "en"
	LangRussian = "ru"
)

// User is created lazily on first interaction and never deleted.
// ID is the Telegram user id.
type User struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Lang string `gorm:"not null;default:en" json:"lang"`
}
