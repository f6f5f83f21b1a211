package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// AttachOccupancy дополняет слоты загрузкой специалиста
// Специалисты без данных получают нулевые счетчики, на валидность слотов загрузка не влияет
func AttachOccupancy(slots []domain.ResolvedSlot, snapshot map[int64]domain.Occupancy) []domain.ResolvedSlot {
	for i := range slots {
		slots[i].Occupancy = snapshot[slots[i].ProfessionalID]
	}
	return slots
}
