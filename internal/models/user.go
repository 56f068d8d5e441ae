package models

type User struct {
	UserID       string `bson:"user_id" json:"user_id"`
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password_hash" json:"-"` // bcrypt hash, opaque to the store
	Email        string `bson:"email" json:"email"`
}
