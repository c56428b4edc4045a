package slotrule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило слотов не найдено
	ErrRuleNotFound = errors.New("slotrule.repository: slot rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotrule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slotrule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slotrule.repository: failed to scan row")
)
