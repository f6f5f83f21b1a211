package availability

import "errors"

var (
	// ErrOverlappingRules возвращается, когда минуту покрывают несколько правил одного уровня
	// (два специфичных правила на дату или два еженедельных на день недели)
	ErrOverlappingRules = errors.New("availability: overlapping rules of the same precedence tier")
)
