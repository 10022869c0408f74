// dto - JSON-представления запросов и ответов REST API.
package dto

import "time"

// UserWithRoles - элемент ответа GET /api/admin/usersWithRoles.
type UserWithRoles struct {
	ID       int64    `json:"id"`
	UserName string   `json:"userName"`
	Roles    []string `json:"roles"`
}

// RoleEditRequest - тело POST /api/admin/editRoles/{userName}.
// Отсутствующий или null roleNames означает "без ролей".
type RoleEditRequest struct {
	RoleNames []string `json:"roleNames"`
}

// PhotoForModeration - элемент ответа GET /api/admin/photosForModeration.
type PhotoForModeration struct {
	ID         int64  `json:"id"`
	UserName   string `json:"userName"`
	URL        string `json:"url"`
	IsApproved bool   `json:"isApproved"`
}

// PhotoForReturn - фотография в ответах photos-эндпойнтов.
type PhotoForReturn struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	DateAdded   time.Time `json:"dateAdded"`
	IsMain      bool      `json:"isMain"`
	IsApproved  bool      `json:"isApproved"`
	PublicID    string    `json:"publicId"`
}
