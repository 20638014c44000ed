package entity

// AccessAuth is the access scope carried by login/signup tokens.
const AccessAuth = "auth"

// Token is one issued session credential. A user holds one per device.
type Token struct {
	Access string
	Token  string
}

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID       string
	Email    string
	Password string
	Tokens   []Token
}

// HasToken reports whether token is in the user's token list with the given access.
func (u *User) HasToken(access, token string) bool {
	for _, t := range u.Tokens {
		if t.Access == access && t.Token == token {
			return true
		}
	}
	return false
}
