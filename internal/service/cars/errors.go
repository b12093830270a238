package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("car not found")

	// ErrOwnerNotFound возвращается, когда владелец объявления не существует
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrInvalidPrice возвращается, когда цена за день не положительная
	ErrInvalidPrice = errors.New("price per day must be positive")

	// ErrInvalidYear возвращается при неправдоподобном годе выпуска
	ErrInvalidYear = errors.New("implausible model year")

	// ErrInvalidCategory возвращается при неизвестном классе автомобиля
	ErrInvalidCategory = errors.New("unknown car category")

	// ErrInvalidListingType возвращается при неизвестном типе объявления
	ErrInvalidListingType = errors.New("unknown listing type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cars service: internal error")
)
