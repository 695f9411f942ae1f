package auth

// The catalog has exactly one account.
const (
	AdminUsername = "admin"
	// AdminPasswordHash is bcrypt, cost 12.
	AdminPasswordHash = "$2b$12$p5.UuPb9Zh.siIc78Ie.Nu9eGx9d5OLT2pkecedig2P.6CdfL1ZUa"
)

const (
	CookieName = "bookshelf_session"
)
