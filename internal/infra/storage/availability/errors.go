package availability

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrDeleteScope возвращается, когда не удалось очистить старые флаги
	// перед полной заменой набора
	ErrDeleteScope = errors.New("availability.repository: failed to clear scope")

	// ErrInsertScope возвращается, когда не удалось вставить новый набор флагов
	ErrInsertScope = errors.New("availability.repository: failed to insert scope")
)
