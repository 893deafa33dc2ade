package catalogservice

import "github.com/google/uuid"

// Resource модель ресурса (сервиса) из каталога
type Resource struct {
	ID          uuid.UUID `json:"id"`
	OwnerUserID int64     `json:"owner_user_id"`
	Title       string    `json:"title"`
	Active      bool      `json:"active"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
