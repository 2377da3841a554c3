package user

// Admin is the single operator account configured through the environment.
type Admin struct {
	email        Email
	passwordHash string
	role         Role
}

func NewAdmin(email Email, passwordHash string) *Admin {
	return &Admin{
		email:        email,
		passwordHash: passwordHash,
		role:         RoleAdmin,
	}
}

func (a *Admin) Email() Email         { return a.email }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) Role() Role           { return a.role }

// Locked reports whether no password hash was configured.
func (a *Admin) Locked() bool { return a.passwordHash == "" }
