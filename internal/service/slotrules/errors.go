package slotrules

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило слотов не найдено
	ErrRuleNotFound = errors.New("slot rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
