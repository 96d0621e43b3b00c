package domain

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// PublicUser is the minimal projection returned by GET /users/{id}.
type PublicUser struct {
	Username string `json:"username"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Username: u.Username}
}
