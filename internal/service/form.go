package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"fan-globe/internal/geo"
	"fan-globe/internal/models"
	"fan-globe/internal/observability"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// MinZipLength is the shortest accepted postal code after trimming.
const MinZipLength = 5

var emailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// Resolver turns a postal code into a place.
type Resolver interface {
	Resolve(ctx context.Context, zip string) (models.GeoPlace, error)
}

// SubmissionWriter is the part of the submission store the form needs.
type SubmissionWriter interface {
	Append(ctx context.Context, row models.Submission) error
	AppendMany(ctx context.Context, rows []models.Submission) error
}

// SignupInput is what the fan typed into the form.
type SignupInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Zip   string `json:"zip"`
}

// FormState is the form as the client should render it.
type FormState struct {
	Draft        SignupInput `json:"draft"`
	Message      string      `json:"message"`
	HasSubmitted bool        `json:"has_submitted"`
	Pending      bool        `json:"pending"`
}

// FormController validates signups, resolves their ZIP code and appends them
// to the store. Only one submission can be in flight at a time.
type FormController struct {
	resolver Resolver
	store    SubmissionWriter
	clock    clockwork.Clock
	newID    func() string
	metrics  *observability.Metrics
	logger   zerolog.Logger

	inFlight atomic.Bool

	mu     sync.Mutex
	form   FormState
	closed bool
}

// NewFormController creates a form controller.
func NewFormController(resolver Resolver, store SubmissionWriter, clock clockwork.Clock, metrics *observability.Metrics, logger zerolog.Logger) *FormController {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &FormController{
		resolver: resolver,
		store:    store,
		clock:    clock,
		newID:    uuid.NewString,
		metrics:  metrics,
		logger:   logger.With().Str("component", "form").Logger(),
	}
}

// Validate checks in, first failure wins: name, then email, then ZIP. It
// returns the trimmed input with the email lowercased.
func Validate(in SignupInput) (SignupInput, error) {
	out := SignupInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Zip:   strings.TrimSpace(in.Zip),
	}
	if out.Name == "" {
		return SignupInput{}, &ValidationError{Field: "name", Message: MessageNameMissing}
	}
	if !emailPattern.MatchString(out.Email) {
		return SignupInput{}, &ValidationError{Field: "email", Message: MessageEmailBad}
	}
	if utf8.RuneCountInString(out.Zip) < MinZipLength {
		return SignupInput{}, &ValidationError{Field: "zip", Message: MessageZipShort}
	}
	out.Email = strings.ToLower(out.Email)
	return out, nil
}

// Submit validates in, resolves its ZIP and appends a new submission at the
// head of the store. It returns *ValidationError or *ResolutionError for
// user-correctable problems and ErrSubmissionInFlight when another call is
// still running. After Close, a resolution that completes is dropped and
// Submit returns (nil, nil).
func (f *FormController) Submit(ctx context.Context, in SignupInput) (*models.Submission, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		f.count("rejected")
		return nil, ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, nil
	}
	f.form.Draft = in
	f.form.Message = ""
	f.form.Pending = true
	f.mu.Unlock()

	valid, err := Validate(in)
	if err != nil {
		f.finish(err.Error())
		f.count("invalid")
		return nil, err
	}

	place, err := f.resolver.Resolve(ctx, valid.Zip)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Pending = false

	if f.closed {
		f.logger.Debug().Str("zip", valid.Zip).Msg("dropping resolution that finished after shutdown")
		return nil, nil
	}
	if err != nil {
		resErr := &ResolutionError{Zip: valid.Zip, Err: err}
		f.form.Message = resErr.Error()
		f.count("unresolved")
		if errors.Is(err, geo.ErrNotFound) {
			f.logger.Info().Str("zip", valid.Zip).Msg("zip not found")
		} else {
			f.logger.Warn().Err(err).Str("zip", valid.Zip).Msg("zip resolution failed")
		}
		return nil, resErr
	}

	row := models.Submission{
		ID:        f.newID(),
		Name:      valid.Name,
		Email:     valid.Email,
		Zip:       valid.Zip,
		City:      place.City,
		State:     place.State,
		Lat:       place.Lat,
		Lon:       place.Lon,
		Timestamp: models.FormatTimestamp(f.clock.Now()),
	}
	if err := f.store.Append(ctx, row); err != nil {
		f.form.Message = MessageSaveFailed
		f.count("failed")
		f.logger.Error().Err(err).Str("zip", valid.Zip).Msg("cannot save submission")
		return nil, err
	}

	f.form.Draft = SignupInput{}
	f.form.Message = MessagePinned
	f.form.HasSubmitted = true
	f.count("pinned")
	f.logger.Info().Str("id", row.ID).Str("place", row.Place().Label()).Msg("fan pinned")
	return &row, nil
}

// SeedDemo prepends one sample pin per seed-table ZIP code.
func (f *FormController) SeedDemo(ctx context.Context) ([]models.Submission, error) {
	now := models.FormatTimestamp(f.clock.Now())
	seed := geo.Seed()

	rows := make([]models.Submission, len(seed))
	for i, e := range seed {
		rows[i] = models.Submission{
			ID:        f.newID(),
			Name:      "Fan " + e.Zip,
			Email:     "fan" + e.Zip + "@example.com",
			Zip:       e.Zip,
			City:      e.Place.City,
			State:     e.Place.State,
			Lat:       e.Place.Lat,
			Lon:       e.Place.Lon,
			Timestamp: now,
		}
	}
	if err := f.store.AppendMany(ctx, rows); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.form.Message = MessageDemoLoaded
	f.mu.Unlock()
	return rows, nil
}

// Form returns the current form state.
func (f *FormController) Form() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// UpdateDraft stores the fields the fan is editing.
func (f *FormController) UpdateDraft(in SignupInput) FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Draft = in
	return f.form
}

// Close marks the controller as torn down. Resolutions still in flight are
// discarded when they complete.
func (f *FormController) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *FormController) finish(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Pending = false
	f.form.Message = message
}

func (f *FormController) count(outcome string) {
	if f.metrics != nil {
		f.metrics.Submissions.WithLabelValues(outcome).Inc()
	}
}
