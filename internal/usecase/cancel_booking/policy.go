package cancel_booking

import "context"

// RequireExplicit отмена только при явном подтверждении в запросе (HTTP API)
type RequireExplicit struct{}

// Confirm возвращает флаг подтверждения из запроса
func (RequireExplicit) Confirm(_ context.Context, req *Request) bool {
	return req.Confirmed
}

// AlwaysConfirm отмена без подтверждения (фоновые задачи, администрирование)
type AlwaysConfirm struct{}

// Confirm всегда возвращает true
func (AlwaysConfirm) Confirm(context.Context, *Request) bool {
	return true
}
