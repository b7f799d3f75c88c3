package models

type User struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}

type Post struct {
	ID      int64  `json:"id" db:"id"`
	Text    string `json:"text" db:"text"`
	OwnerID int64  `json:"user_id" db:"owner_id"`
}
