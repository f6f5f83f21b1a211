package domain

// Service услуга клиники (длительность задает длину слота)
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
}

// QualifiedProfessional специалист, оказывающий услугу
// DurationMinutes может переопределять длительность услуги для конкретного специалиста
type QualifiedProfessional struct {
	ProfessionalID  int64
	Name            string
	DurationMinutes int
}
