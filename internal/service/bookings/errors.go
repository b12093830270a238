package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("car not found")

	// ErrClientNotFound возвращается, когда клиент не существует
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("end date is before start date")

	// ErrCarUnavailable возвращается при попытке забронировать
	// недоступный автомобиль
	ErrCarUnavailable = errors.New("car is not available")

	// ErrDateConflict возвращается, когда даты пересекаются с активным
	// бронированием этого автомобиля
	ErrDateConflict = errors.New("dates overlap an existing booking")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrStatusConflict возвращается проигравшему из двух конкурентных
	// переходов статуса
	ErrStatusConflict = errors.New("booking status changed concurrently")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
