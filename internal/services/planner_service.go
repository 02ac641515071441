package services

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/yuqiannemo/WanderMind/internal/models/db_models"
	"github.com/yuqiannemo/WanderMind/internal/models/response_models"
	"github.com/yuqiannemo/WanderMind/pkg/geocoder"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

const (
	maxCompletionTokens = 4096

	// Maximum perturbation, in degrees per axis, applied to attractions the
	// geocoder could only place at the city center.
	jitterDegrees = 0.02

	routeSummaryFallback  = "Your personalized itinerary is ready!"
	refineSummaryFallback = "Your itinerary has been updated!"
)

type PlannerServiceInterface interface {
	RecommendAttractions(ctx context.Context, sessionID string) ([]response_models.Attraction, error)
	GenerateRoute(ctx context.Context, sessionID string, attractions []response_models.Attraction) (*response_models.TravelRoute, error)
	RefineRoute(ctx context.Context, sessionID string, message string, currentRoute response_models.TravelRoute) (*response_models.TravelRoute, error)
}

type PlannerService struct {
	sessionService SessionServiceInterface
	aiClient       utils.AIClientInterface
	geocoder       geocoder.GeocoderInterface
	rng            *rand.Rand
}

// NewPlannerService wires the generation pipeline. rng drives the
// marker-overlap jitter; pass a seeded source in tests, nil for production.
func NewPlannerService(
	sessionService SessionServiceInterface,
	aiClient utils.AIClientInterface,
	geocoder geocoder.GeocoderInterface,
	rng *rand.Rand,
) PlannerServiceInterface {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlannerService{
		sessionService: sessionService,
		aiClient:       aiClient,
		geocoder:       geocoder,
		rng:            rng,
	}
}

func (p *PlannerService) RecommendAttractions(ctx context.Context, sessionID string) ([]response_models.Attraction, error) {
	session, err := p.sessionService.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	days, err := TripDays(session.StartDate, session.EndDate)
	if err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := BuildRecommendPrompt(session.City, days, session.Interests)

	raw, err := p.aiClient.Complete(ctx, systemPrompt, userPrompt, maxCompletionTokens)
	if err != nil {
		log.Printf("AI API error: %v", err)
		return nil, utils.ErrAIService
	}

	var proposals []aiAttraction
	if err := utils.DecodeAIResponse(raw, &proposals); err != nil {
		return nil, err
	}

	attractions, err := p.enrichAttractions(ctx, session, proposals)
	if err != nil {
		return nil, err
	}

	log.Printf("Generated %d attractions for session %s", len(attractions), sessionID)
	return attractions, nil
}

// enrichAttractions assigns each proposal a fresh id and coordinates. When
// the geocoder could not place an attraction more precisely than the cached
// city center, every item after the first is nudged by up to ±jitterDegrees
// per axis so map markers do not stack. The first item may sit exactly at
// the center.
func (p *PlannerService) enrichAttractions(ctx context.Context, session *db_models.Session, proposals []aiAttraction) ([]response_models.Attraction, error) {
	var cityLat, cityLng float64
	if len(session.CityCoordinates) == 2 {
		cityLat, cityLng = session.CityCoordinates[0], session.CityCoordinates[1]
	}

	attractions := make([]response_models.Attraction, 0, len(proposals))
	for idx, proposal := range proposals {
		if err := proposal.validate(); err != nil {
			log.Printf("Rejecting AI recommendation batch: %v", err)
			return nil, utils.ErrMalformedAIResponse
		}

		lat, lng := p.geocoder.Resolve(ctx, session.City, proposal.Name)
		if idx > 0 && lat == cityLat && lng == cityLng {
			lat += p.jitter()
			lng += p.jitter()
		}

		attractions = append(attractions, response_models.Attraction{
			ID:          uuid.New().String(),
			Name:        proposal.Name,
			Description: proposal.Description,
			DurationHr:  proposal.DurationHr,
			Category:    proposal.Category,
			Latitude:    lat,
			Longitude:   lng,
			Coordinates: []float64{lat, lng},
		})
	}

	return attractions, nil
}

func (p *PlannerService) jitter() float64 {
	return (p.rng.Float64()*2 - 1) * jitterDegrees
}

func (p *PlannerService) GenerateRoute(ctx context.Context, sessionID string, attractions []response_models.Attraction) (*response_models.TravelRoute, error) {
	session, err := p.sessionService.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(attractions) < 2 {
		return nil, utils.ErrInvalidInput
	}

	days, err := TripDays(session.StartDate, session.EndDate)
	if err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := BuildRoutePrompt(session.City, days, attractions)

	raw, err := p.aiClient.Complete(ctx, systemPrompt, userPrompt, maxCompletionTokens)
	if err != nil {
		log.Printf("AI API error: %v", err)
		return nil, utils.ErrAIService
	}

	var plan aiRoute
	if err := utils.DecodeAIResponse(raw, &plan); err != nil {
		return nil, err
	}

	route := buildRouteFromPlan(plan, attractionLookup(attractions), routeSummaryFallback)

	log.Printf("Generated route with %d stops for session %s", len(route.Stops), sessionID)
	return &route, nil
}

func (p *PlannerService) RefineRoute(ctx context.Context, sessionID string, message string, currentRoute response_models.TravelRoute) (*response_models.TravelRoute, error) {
	// Refinement only needs the session to exist; the route context comes
	// from the caller.
	if _, err := p.sessionService.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := BuildRefinePrompt(currentRoute, message)

	raw, err := p.aiClient.Complete(ctx, systemPrompt, userPrompt, maxCompletionTokens)
	if err != nil {
		log.Printf("AI API error: %v", err)
		return nil, utils.ErrAIService
	}

	var plan aiRoute
	if err := utils.DecodeAIResponse(raw, &plan); err != nil {
		return nil, err
	}

	// Refinement matches against the current route's own attractions: the
	// model may drop or reorder stops but can never introduce an attraction
	// the route did not already contain.
	catalog := make([]response_models.Attraction, 0, len(currentRoute.Stops))
	for _, stop := range currentRoute.Stops {
		catalog = append(catalog, stop.Attraction)
	}

	route := buildRouteFromPlan(plan, attractionLookup(catalog), refineSummaryFallback)

	log.Printf("Refined route for session %s", sessionID)
	return &route, nil
}
