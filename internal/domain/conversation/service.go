package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/weather-companion/internal/domain/assistant"
	"github.com/yanqian/weather-companion/internal/domain/chat"
	"github.com/yanqian/weather-companion/internal/domain/weather"
	apperrors "github.com/yanqian/weather-companion/pkg/errors"
	"github.com/yanqian/weather-companion/pkg/util"
)

const (
	defaultSessionTTL = 2 * time.Hour
	maxUTCOffset      = 14 * 3600

	msgCityNotFound         = "City not found. Please enter a valid city name."
	msgSuggesting           = "Suggesting some activities for you to do .. "
	msgAssistantUnavailable = "Error: Could not reach OpenAI."
)

// cityPattern gates submissions: letters and spaces only.
var cityPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

// Service drives the chat widget: one weather lookup and one assistant call per turn.
type Service interface {
	Start(ctx context.Context, req StartRequest) (Snapshot, error)
	Snapshot(ctx context.Context, id string) (Snapshot, error)
	Send(ctx context.Context, id string, req SendRequest) (TurnResult, error)
	FunFacts(ctx context.Context, id string) (Snapshot, error)
}

type service struct {
	cfg       Config
	store     Store
	weather   WeatherClient
	assistant assistant.Service
	assets    AssetResolver
	logger    *slog.Logger
	now       util.Clock
	guard     *turnGuard
}

// NewService wires up the conversation controller.
func NewService(cfg Config, store Store, weatherClient WeatherClient, assistantSvc assistant.Service, assets AssetResolver, clock util.Clock, logger *slog.Logger) Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if clock == nil {
		clock = util.SystemClock()
	}
	return &service{
		cfg:       cfg,
		store:     store,
		weather:   weatherClient,
		assistant: assistantSvc,
		assets:    assets,
		logger:    logger.With("component", "conversation.service"),
		now:       clock,
		guard:     newTurnGuard(),
	}
}

func (s *service) Start(ctx context.Context, req StartRequest) (Snapshot, error) {
	if off := req.UTCOffset; off != nil && (*off < -maxUTCOffset || *off > maxUTCOffset) {
		return Snapshot{}, apperrors.Wrap(apperrors.CodeInvalidInput, "utcOffset must be within ±14h", nil)
	}
	now := s.now()
	sess := Session{
		ID:              uuid.NewString(),
		Messages:        []chat.Message{},
		ClientUTCOffset: req.UTCOffset,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.save(ctx, &sess); err != nil {
		return Snapshot{}, err
	}
	s.logger.Info("session started", "session_id", sess.ID)
	return s.snapshot(ctx, sess), nil
}

func (s *service) Snapshot(ctx context.Context, id string) (Snapshot, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(ctx, sess), nil
}

func (s *service) Send(ctx context.Context, id string, req SendRequest) (TurnResult, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return TurnResult{}, err
	}

	input := req.Text
	city := strings.TrimSpace(input)
	if city == "" {
		return TurnResult{Session: s.snapshot(ctx, sess)}, nil
	}
	// Invalid input is dropped without a chat message; only the box is cleared.
	if !cityPattern.MatchString(city) {
		s.logger.Debug("input rejected", "session_id", id)
		return TurnResult{ClearInput: true, Session: s.snapshot(ctx, sess)}, nil
	}

	if !s.guard.acquire(id) {
		return TurnResult{}, apperrors.Wrap(apperrors.CodeTurnInProgress, "a turn is already running for this session", nil)
	}
	defer s.guard.release(id)

	// The turn always runs to a terminal state, even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	// Reload under the guard so a turn that finished meanwhile is not overwritten.
	if sess, err = s.load(ctx, id); err != nil {
		return TurnResult{}, err
	}
	prior := append([]chat.Message(nil), sess.Messages...)

	sess.Activities = []string{}
	sess.Loading = true
	if err := s.save(ctx, &sess); err != nil {
		return TurnResult{}, err
	}

	rec, err := s.weather.Lookup(ctx, city)
	if err != nil {
		s.logger.Warn("weather lookup failed", "session_id", id, "city", city, "code", apperrors.CodeOf(err), "error", err)
		sess.Weather = nil
		sess.FunFacts = []string{}
		sess.Messages = append(sess.Messages, chat.User(input), chat.Bot(msgCityNotFound))
		sess.Loading = false
		if err := s.save(ctx, &sess); err != nil {
			s.settle(ctx, sess, err)
			return TurnResult{}, err
		}
		return TurnResult{Accepted: true, ClearInput: true, Session: s.snapshot(ctx, sess)}, nil
	}

	sess.Weather = &rec
	sess.FunFacts = []string{}
	sess.Messages = append(sess.Messages, chat.User(input), chat.Bot(weatherSummary(rec)))
	sess.GeneratingActivities = true
	if err := s.save(ctx, &sess); err != nil {
		s.settle(ctx, sess, err)
		return TurnResult{}, err
	}

	part := weather.DayPartAt(&rec, s.clientNow(sess))
	suggestion, err := s.assistant.SuggestActivities(ctx, assistant.ActivityRequest{
		Weather:    rec,
		DayPart:    part,
		Transcript: prior,
		UserText:   input,
	})
	if err != nil {
		s.logger.Warn("activity suggestion failed", "session_id", id, "city", rec.City, "error", err)
		sess.Messages = append(sess.Messages, chat.Bot(msgAssistantUnavailable))
	} else {
		sess.Messages = append(sess.Messages, chat.Bot(msgSuggesting))
		sess.Activities = suggestion.Items
	}
	sess.GeneratingActivities = false
	sess.Loading = false
	if err := s.save(ctx, &sess); err != nil {
		s.settle(ctx, sess, err)
		return TurnResult{}, err
	}

	s.logger.Info("turn completed", "session_id", id, "city", rec.City, "day_part", part, "activities", len(sess.Activities))
	return TurnResult{Accepted: true, ClearInput: true, Session: s.snapshot(ctx, sess)}, nil
}

func (s *service) FunFacts(ctx context.Context, id string) (Snapshot, error) {
	if !s.guard.acquire(id) {
		return Snapshot{}, apperrors.Wrap(apperrors.CodeTurnInProgress, "a turn is already running for this session", nil)
	}
	defer s.guard.release(id)

	sess, err := s.load(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	if sess.Weather == nil {
		return Snapshot{}, apperrors.Wrap(apperrors.CodeInvalidInput, "look up a city before asking for fun facts", nil)
	}

	ctx = context.WithoutCancel(ctx)
	sess.FunFacts = []string{}
	sess.GeneratingFunFacts = true
	if err := s.save(ctx, &sess); err != nil {
		return Snapshot{}, err
	}

	rec := *sess.Weather
	suggestion, callErr := s.assistant.SuggestFunFacts(ctx, assistant.FunFactRequest{
		Weather: rec,
		DayPart: weather.DayPartAt(&rec, s.clientNow(sess)),
	})
	if callErr == nil {
		sess.FunFacts = suggestion.Items
	}
	sess.GeneratingFunFacts = false
	if err := s.save(ctx, &sess); err != nil {
		s.settle(ctx, sess, err)
		return Snapshot{}, err
	}
	if callErr != nil {
		s.logger.Warn("fun facts failed", "session_id", id, "city", rec.City, "error", callErr)
		return Snapshot{}, callErr
	}
	return s.snapshot(ctx, sess), nil
}

func (s *service) load(ctx context.Context, id string) (Session, error) {
	if strings.TrimSpace(id) == "" {
		return Session{}, apperrors.Wrap(apperrors.CodeInvalidInput, "session id cannot be empty", nil)
	}
	sess, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeSessionError, "session lookup failed", err)
	}
	if !ok {
		return Session{}, apperrors.Wrap(apperrors.CodeSessionNotFound, "session not found", nil)
	}
	return sess, nil
}

func (s *service) save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, *sess, s.cfg.SessionTTL); err != nil {
		return apperrors.Wrap(apperrors.CodeSessionError, "session save failed", err)
	}
	return nil
}

// settle retries a failed save with every in-flight flag cleared, so the
// stored session does not report a turn that will never finish.
func (s *service) settle(ctx context.Context, sess Session, cause error) {
	sess.Loading = false
	sess.GeneratingActivities = false
	sess.GeneratingFunFacts = false
	if err := s.save(ctx, &sess); err != nil {
		s.logger.Error("session left in progress", "session_id", sess.ID, "cause", cause, "error", err)
		return
	}
	s.logger.Warn("turn aborted after save failure", "session_id", sess.ID, "error", cause)
}

func (s *service) snapshot(ctx context.Context, sess Session) Snapshot {
	return buildSnapshot(ctx, sess, s.clientNow(sess), s.assets)
}

// clientNow is the current instant in the browser's zone when it is known.
func (s *service) clientNow(sess Session) time.Time {
	now := s.now()
	if off := sess.ClientUTCOffset; off != nil {
		return now.In(time.FixedZone("client", int(*off)))
	}
	return now
}

func weatherSummary(rec weather.Record) string {
	return fmt.Sprintf("Weather in %s: %s°C, %s.", rec.City, weather.FormatTemperature(rec.Temperature), rec.Description)
}

// turnGuard admits one running turn per session within this process.
type turnGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newTurnGuard() *turnGuard {
	return &turnGuard{active: make(map[string]struct{})}
}

func (g *turnGuard) acquire(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[id]; busy {
		return false
	}
	g.active[id] = struct{}{}
	return true
}

func (g *turnGuard) release(id string) {
	g.mu.Lock()
	delete(g.active, id)
	g.mu.Unlock()
}
