package models

import "time"

// Photo - фотография пользователя.
// PublicID - маркер версии объекта в хранилище; пустой означает, что объекта нет.
type Photo struct {
	ID          int64
	UserID      int64
	URL         string
	Description string
	DateAdded   time.Time
	IsMain      bool
	IsApproved  bool
	PublicID    string
}

// HasStoredObject сообщает, есть ли у фотографии объект в бакете.
func (p *Photo) HasStoredObject() bool {
	return p.PublicID != ""
}

// PhotoForModeration - неодобренная фотография вместе с логином владельца.
type PhotoForModeration struct {
	ID         int64
	Username   string
	URL        string
	IsApproved bool
}
