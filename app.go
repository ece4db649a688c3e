// Package skill wires the ticket query pipeline: resolve both station
// names, fetch the raw left-ticket records, decode them, filter, and hand
// the projection to a renderer.
package skill

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/kirorab/12306-skill/cache"
	"github.com/kirorab/12306-skill/client"
	"github.com/kirorab/12306-skill/config"
	"github.com/kirorab/12306-skill/filter"
	"github.com/kirorab/12306-skill/ratelimit"
	"github.com/kirorab/12306-skill/render"
	"github.com/kirorab/12306-skill/station"
	"github.com/kirorab/12306-skill/ticket"
)

const dateLayout = "2006-01-02"

// QueryRequest is one origin/destination/date query plus its filters.
type QueryRequest struct {
	From     string
	To       string
	Date     string
	Criteria filter.Criteria
	// Refresh forces a station directory rebuild, bypassing the cache.
	Refresh bool
}

type App struct {
	cfg      *config.AppConfig
	log      zerolog.Logger
	client   *client.Client
	stations *station.Store
	tickets  cache.Cache
	schema   ticket.FieldSchema
}

func New(cfg *config.AppConfig, log zerolog.Logger) *App {
	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	})
	cl := client.New(client.Config{
		DirectoryURL: cfg.Upstream.DirectoryURL,
		QueryURL:     cfg.Upstream.QueryURL,
		SessionURL:   cfg.Upstream.SessionURL,
		Timeout:      time.Duration(cfg.Upstream.TimeoutMS) * time.Millisecond,
	}, limiter)

	storage := &station.FileStorage{Path: filepath.Join(cfg.Cache.Dir, "stations.json")}
	ttl := time.Duration(cfg.Cache.DirectoryTTLHours) * time.Hour
	stations := station.NewStore(cl, storage, station.SystemClock(), ttl, log)

	var tickets cache.Cache = cache.NewNoOpCache()
	if cfg.Cache.Redis.Enabled {
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.Cache.Redis.Host,
			Port:     cfg.Cache.Redis.Port,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			TTL:      time.Duration(cfg.Cache.Redis.TTLSeconds) * time.Second,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unreachable, query cache disabled")
		} else {
			tickets = rc
		}
	}

	return &App{
		cfg:      cfg,
		log:      log,
		client:   cl,
		stations: stations,
		tickets:  tickets,
		schema:   ticket.LeftTicketV1(),
	}
}

// Query runs the full pipeline and returns the projection every output
// format consumes. An empty ticket list is a valid result, not an error.
func (a *App) Query(ctx context.Context, req QueryRequest) (*render.Projection, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("travel date must be YYYY-MM-DD: %q", req.Date)
	}

	dir, err := a.stations.Load(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}
	origin, ok := dir.Resolve(req.From)
	if !ok {
		return nil, &station.NotFoundError{Query: req.From}
	}
	dest, ok := dir.Resolve(req.To)
	if !ok {
		return nil, &station.NotFoundError{Query: req.To}
	}

	key := cache.Key{From: origin.Code, To: dest.Code, Date: req.Date}
	tickets, hit := a.tickets.Get(ctx, key)
	if !hit {
		raws, err := a.client.QueryTickets(ctx, origin.Code, dest.Code, req.Date)
		if err != nil {
			return nil, err
		}
		tickets = make([]ticket.Record, 0, len(raws))
		for _, raw := range raws {
			tickets = append(tickets, ticket.Decode(raw, a.schema, dir))
		}
		if err := a.tickets.Set(ctx, key, tickets); err != nil {
			a.log.Warn().Err(err).Msg("query cache write failed")
		}
	}

	filtered := filter.Apply(tickets, req.Criteria)
	a.log.Info().
		Str("from", origin.Name).
		Str("to", dest.Name).
		Str("date", req.Date).
		Bool("cache_hit", hit).
		Int("total", len(tickets)).
		Int("matched", len(filtered)).
		Msg("query complete")

	return &render.Projection{
		Origin:      origin,
		Destination: dest,
		Date:        req.Date,
		FilterDesc:  filter.Describe(req.Criteria),
		Tickets:     filtered,
	}, nil
}

// Close releases the query cache connection.
func (a *App) Close() error {
	return a.tickets.Close()
}
