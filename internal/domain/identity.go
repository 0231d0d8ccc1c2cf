package domain

// Роли пользователей платформы.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Identity представляет аутентифицированного пользователя, переданного провайдером идентификации.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin сообщает, может ли пользователь выполнять административные операции.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
