package room

import (
	"errors"
	"fmt"

	"github.com/m04kA/alejandrums/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = fmt.Errorf("room.repository: %w", domain.ErrRoomNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
