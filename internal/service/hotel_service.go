package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-booking/internal/domain"
	"github.com/spec-kit/hotel-booking/internal/events"
	"github.com/spec-kit/hotel-booking/internal/persistence"
	"github.com/spec-kit/hotel-booking/internal/repository"
	apperrors "github.com/spec-kit/hotel-booking/pkg/util"
)

const (
	hotelListCacheKey = "hotels:list"
	hotelListCacheTTL = time.Minute
)

// HotelInput carries validated fields for create/update.
type HotelInput struct {
	Name          string
	Location      string
	PricePerNight float64
}

// HotelService coordinates hotel CRUD with a Redis read-through cache on the
// listing. The cache is optional; a nil client degrades to repository reads.
type HotelService struct {
	hotels     repository.HotelRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// HotelDependencies encapsulates collaborator requirements for hotel service.
type HotelDependencies struct {
	HotelRepo  repository.HotelRepository
	Cache      *persistence.Redis
	Dispatcher events.Dispatcher
}

// NewHotelService builds the service.
func NewHotelService(deps HotelDependencies, logger *zap.Logger) *HotelService {
	return &HotelService{
		hotels:     deps.HotelRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// List returns all hotels, serving from cache when warm.
func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	if hotels, ok := s.cachedList(ctx); ok {
		return hotels, nil
	}

	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.storeList(ctx, hotels)
	return hotels, nil
}

// Get returns one hotel by id.
func (s *HotelService) Get(ctx context.Context, id string) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Hotel")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return hotel, nil
}

// Create persists a new hotel and invalidates the listing cache.
func (s *HotelService) Create(ctx context.Context, input HotelInput) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:          input.Name,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventHotelCreated, hotel.ID, events.HotelChangedPayload{
		Name:          hotel.Name,
		Location:      hotel.Location,
		PricePerNight: hotel.PricePerNight,
	})
	return hotel, nil
}

// Update overwrites an existing hotel.
func (s *HotelService) Update(ctx context.Context, id string, input HotelInput) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		ID:            id,
		Name:          input.Name,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
	}
	if err := s.hotels.Update(ctx, hotel); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Hotel")
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventHotelUpdated, hotel.ID, events.HotelChangedPayload{
		Name:          hotel.Name,
		Location:      hotel.Location,
		PricePerNight: hotel.PricePerNight,
	})
	return hotel, nil
}

// Delete removes a hotel.
func (s *HotelService) Delete(ctx context.Context, id string) error {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Hotel")
		}
		return apperrors.NewInternalError(err)
	}

	if err := s.hotels.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Hotel")
		}
		return apperrors.NewInternalError(err)
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventHotelDeleted, id, events.HotelDeletedPayload{Name: hotel.Name})
	return nil
}

func (s *HotelService) client() *redis.Client {
	if s.cache == nil {
		return nil
	}
	return s.cache.Client
}

func (s *HotelService) cachedList(ctx context.Context) ([]domain.Hotel, bool) {
	client := s.client()
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(ctx, hotelListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("hotel list cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var hotels []domain.Hotel
	if err := json.Unmarshal(raw, &hotels); err != nil {
		s.logger.Warn("hotel list cache corrupt", zap.Error(err))
		return nil, false
	}
	return hotels, true
}

func (s *HotelService) storeList(ctx context.Context, hotels []domain.Hotel) {
	client := s.client()
	if client == nil {
		return
	}
	raw, err := json.Marshal(hotels)
	if err != nil {
		return
	}
	if err := client.Set(ctx, hotelListCacheKey, raw, hotelListCacheTTL).Err(); err != nil {
		s.logger.Warn("hotel list cache write failed", zap.Error(err))
	}
}

func (s *HotelService) invalidateList(ctx context.Context) {
	client := s.client()
	if client == nil {
		return
	}
	if err := client.Del(ctx, hotelListCacheKey).Err(); err != nil {
		s.logger.Warn("hotel list cache invalidation failed", zap.Error(err))
	}
}

func (s *HotelService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
