package objects

import "reflect"

type User struct {
	UserID   string `json:"user_id" bson:"user_id,omitempty"`
	Username string `json:"username" bson:"username,omitempty"`
	Email    string `json:"email" bson:"email,omitempty"`

	// PasswordHash is the bcrypt hash and never leaves the server.
	PasswordHash string `json:"-" bson:"password,omitempty"`
}

func (u User) GetID() string {
	return u.UserID
}

func (u User) IsNil() bool {
	return reflect.ValueOf(u).IsZero()
}

// LoginResult is what the login endpoint answers with.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
