package reserve_capacity

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на резервирование ёмкости
type Request struct {
	ResourceID uuid.UUID // ID ресурса в каталоге
	OwnerRef   uuid.UUID // ID аренды в rental-workflow сервисе
	StartDate  time.Time // Первый день резервации (включительно)
	EndDate    time.Time // Последний день резервации (включительно)
	Amount     float64   // Резервируемая ёмкость на каждый день диапазона
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID         int64     // ID созданной резервации
	ResourceID uuid.UUID // ID ресурса
	OwnerRef   uuid.UUID // ID аренды
	StartDate  time.Time // Первый день
	EndDate    time.Time // Последний день
	Amount     float64   // Зарезервированная ёмкость
	CreatedAt  time.Time // Время создания
}
