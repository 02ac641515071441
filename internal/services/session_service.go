package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yuqiannemo/WanderMind/internal/models/db_models"
	"github.com/yuqiannemo/WanderMind/internal/models/request_models"
	"github.com/yuqiannemo/WanderMind/pkg/geocoder"
	mem "github.com/yuqiannemo/WanderMind/pkg/memcache"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

const dateLayout = "2006-01-02"

// TripDays returns the inclusive day count of a trip. The result is always
// strictly positive for a valid range.
func TripDays(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return 0, utils.ErrInvalidInput
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

type SessionServiceInterface interface {
	CreateSession(ctx context.Context, request request_models.InitRequest) (*db_models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*db_models.Session, error)
}

type SessionService struct {
	store    mem.SessionStore
	geocoder geocoder.GeocoderInterface
}

func NewSessionService(store mem.SessionStore, geocoder geocoder.GeocoderInterface) SessionServiceInterface {
	return &SessionService{
		store:    store,
		geocoder: geocoder,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, request request_models.InitRequest) (*db_models.Session, error) {
	if _, err := TripDays(request.StartDate, request.EndDate); err != nil {
		return nil, err
	}

	// City coordinates are resolved once here and cached on the session.
	lat, lng := s.geocoder.Resolve(ctx, request.City, "")

	session := &db_models.Session{
		SessionID:       uuid.New().String(),
		City:            request.City,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		Interests:       request.Interests,
		CityCoordinates: []float64{lat, lng},
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Created session %s for %s", session.SessionID, session.City)
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*db_models.Session, error) {
	return s.store.Get(ctx, sessionID)
}
