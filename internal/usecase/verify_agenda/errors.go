package verify_agenda

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRuleConflict возвращается, когда в сетке дня встретились пересекающиеся правила одного уровня
	ErrRuleConflict = errors.New("conflicting availability rules")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
