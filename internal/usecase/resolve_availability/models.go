package resolve_availability

import (
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со статусом каждого слота шаблона
type Response struct {
	Date  time.Time         // Дата, на которую запрашивались слоты
	Slots []domain.TimeSlot // Все слоты шаблона в порядке шаблона
}
