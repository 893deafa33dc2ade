package find_free_intervals

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на поиск свободных интервалов
type Request struct {
	ResourceID       uuid.UUID // ID ресурса в каталоге
	StartDate        time.Time // Первый день диапазона поиска (включительно)
	EndDate          time.Time // Последний день диапазона поиска (включительно)
	RequiredCapacity float64   // Требуемая ёмкость на каждый день
}

// FreeInterval свободный интервал в ответе
type FreeInterval struct {
	StartDate            time.Time // Первый день интервала
	EndDate              time.Time // Последний день интервала
	MinAvailableCapacity float64   // Минимальная доступная ёмкость в интервале
	IsFullyAvailable     bool      // Интервал полностью свободен от резерваций
}

// Response модель ответа со свободными интервалами
type Response struct {
	ResourceID uuid.UUID      // ID ресурса
	Intervals  []FreeInterval // Найденные интервалы в хронологическом порядке
}
