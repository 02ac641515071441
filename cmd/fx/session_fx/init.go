package session_fx

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/yuqiannemo/WanderMind/cmd/fx/ai_fx"
	"github.com/yuqiannemo/WanderMind/internal/api/controllers"
	"github.com/yuqiannemo/WanderMind/internal/services"
	"github.com/yuqiannemo/WanderMind/pkg/geocoder"
	mem "github.com/yuqiannemo/WanderMind/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideSessionService,
	provideSessionController)

func provideSessionStore() mem.SessionStore {
	ttl := sessionTTL()

	backend := ai_fx.GetEnvWithDefault("SESSION_BACKEND", "memory")
	switch strings.ToLower(backend) {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     ai_fx.GetEnvWithDefault("REDIS_ADDR", "localhost:6379"),
			Password: ai_fx.GetEnvWithDefault("REDIS_PASSWORD", ""),
		})
		log.Printf("Using redis session store at %s", client.Options().Addr)
		return mem.NewRedisSessionStore(client, ttl)
	default:
		log.Println("Using in-memory session store")
		return mem.NewInMemorySessionStore(ttl)
	}
}

func sessionTTL() time.Duration {
	hours, err := strconv.Atoi(ai_fx.GetEnvWithDefault("SESSION_TTL_HOURS", "24"))
	if err != nil || hours < 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func provideSessionService(store mem.SessionStore, geocoder geocoder.GeocoderInterface) services.SessionServiceInterface {
	return services.NewSessionService(store, geocoder)
}

func provideSessionController(sessionService services.SessionServiceInterface) *controllers.SessionController {
	return controllers.NewSessionController(sessionService)
}
