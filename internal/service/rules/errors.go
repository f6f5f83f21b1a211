package rules

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = errors.New("rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRuleOverlap возвращается, когда правило пересекается с существующим правилом
	// того же специалиста с тем же днем недели или той же датой
	ErrRuleOverlap = errors.New("rule overlaps an existing rule")

	// ErrConcurrentUpdate возвращается, когда параллельная запись правил
	// не позволила зафиксировать транзакцию после повторов
	ErrConcurrentUpdate = errors.New("rules were modified concurrently")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
