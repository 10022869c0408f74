// models содержит доменные сущности dating-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

// Имена ролей, засеянные миграцией.
const (
	RoleAdmin     = "Admin"
	RoleModerator = "Moderator"
	RoleMember    = "Member"
	RoleVIP       = "VIP"
)

// User - пользователь приложения. Создаётся identity-подсистемой,
// здесь только читается.
type User struct {
	ID       int64
	Username string
}

// UserWithRoles - пользователь вместе с именами назначенных ролей (отсортированы).
type UserWithRoles struct {
	ID       int64
	Username string
	Roles    []string
}
