package reviews

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("car not found")

	// ErrInvalidRating возвращается, когда оценка вне диапазона 1-5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrNoCompletedBooking возвращается, когда у рецензента нет
	// завершенной аренды этого автомобиля
	ErrNoCompletedBooking = errors.New("no completed booking for this car")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews service: internal error")
)
