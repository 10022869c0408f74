package dto

import "github.com/pribylovaa/go-dating-service/internal/models"

func UsersWithRolesFromModels(in []models.UserWithRoles) []UserWithRoles {
	out := make([]UserWithRoles, 0, len(in))
	for _, u := range in {
		roles := u.Roles
		if roles == nil {
			roles = []string{}
		}

		out = append(out, UserWithRoles{ID: u.ID, UserName: u.Username, Roles: roles})
	}

	return out
}

func PhotosForModerationFromModels(in []models.PhotoForModeration) []PhotoForModeration {
	out := make([]PhotoForModeration, 0, len(in))
	for _, p := range in {
		out = append(out, PhotoForModeration{
			ID:         p.ID,
			UserName:   p.Username,
			URL:        p.URL,
			IsApproved: p.IsApproved,
		})
	}

	return out
}

func PhotoFromModel(p *models.Photo) PhotoForReturn {
	return PhotoForReturn{
		ID:          p.ID,
		URL:         p.URL,
		Description: p.Description,
		DateAdded:   p.DateAdded.UTC(),
		IsMain:      p.IsMain,
		IsApproved:  p.IsApproved,
		PublicID:    p.PublicID,
	}
}
