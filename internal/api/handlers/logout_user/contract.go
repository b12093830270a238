package logout_user

import "context"

type LogoutService interface {
	Logout(ctx context.Context)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
