package delete_rule

import "context"

type RulesService interface {
	Delete(ctx context.Context, userID, ruleID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
