package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/internal/service/rooms/models"
)

// Service сервис каталога залов
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса залов
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает активные залы по возрастанию ID
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRooms(rooms), nil
}

// GetBySlug получает активный зал по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.RoomResponse, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetBySlug(ctx, slug)
	return s.result("GetBySlug", slug, room, err)
}

// GetByID получает активный зал по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	return s.result("GetByID", id, room, err)
}

func (s *Service) result(op string, key interface{}, room *domain.Room, err error) (*models.RoomResponse, error) {
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			s.logger.Warn("%s: room %v not found", op, key)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room %v: %v", op, key, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !room.IsBookable() {
		s.logger.Warn("%s: room %v is inactive", op, key)
		return nil, ErrRoomNotFound
	}

	return models.FromDomainRoom(room), nil
}
