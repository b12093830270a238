package delete_car

import "context"

type DeleteCarService interface {
	RemoveCar(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
