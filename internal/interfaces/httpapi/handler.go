package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/prasetyowira/footdata/internal/platform/logging"
	"github.com/prasetyowira/footdata/internal/usecase"
)

// StorePinger reports whether the backing store is reachable. *sqlx.DB
// satisfies it.
type StorePinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	leagueService   *usecase.LeagueService
	fixtureService  *usecase.FixtureService
	pipelineService *usecase.PipelineService
	store           StorePinger
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	fixtureService *usecase.FixtureService,
	pipelineService *usecase.PipelineService,
	store StorePinger,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:   leagueService,
		fixtureService:  fixtureService,
		pipelineService: pipelineService,
		store:           store,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type listQuery struct {
	Page  int `validate:"omitempty,gte=1"`
	Limit int `validate:"omitempty,gte=1,lte=100"`
}

// parsePageRequest reads the page and limit query parameters. Missing
// parameters stay zero and pick up the service defaults.
func (h *Handler) parsePageRequest(ctx context.Context, r *http.Request) (usecase.PageRequest, error) {
	query := r.URL.Query()

	page, err := parseIntParam(query.Get("page"), "page")
	if err != nil {
		return usecase.PageRequest{}, err
	}
	limit, err := parseIntParam(query.Get("limit"), "limit")
	if err != nil {
		return usecase.PageRequest{}, err
	}

	if err := h.validateRequest(ctx, listQuery{Page: page, Limit: limit}); err != nil {
		return usecase.PageRequest{}, err
	}

	return usecase.PageRequest{Page: page, Limit: limit}, nil
}

func parseIntParam(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func parseInt64PathValue(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(r.PathValue(name)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

// Healthz reports process liveness plus store reachability. A store
// outage does not fail the check: the API keeps serving snapshots of
// whatever it can.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	storeState := "up"
	if h.store != nil {
		if err := h.store.PingContext(ctx); err != nil {
			h.logger.WarnContext(ctx, "store ping failed", "error", err)
			storeState = "down"
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"status": "ok",
		"store":  storeState,
	})
}
