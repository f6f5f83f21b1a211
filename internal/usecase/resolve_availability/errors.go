package resolve_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRuleConflict возвращается, когда минуту покрывают пересекающиеся правила одного уровня
	ErrRuleConflict = errors.New("conflicting availability rules")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
