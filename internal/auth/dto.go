package auth

// User is the session identity handed back to clients.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginInput carries the customer login form.
type LoginInput struct {
	Email    string
	Password string
}

// AdminLoginInput carries the admin panel login form.
type AdminLoginInput struct {
	Username string
	Password string
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Result is a successful authentication: a minted access token plus the user.
type Result struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
