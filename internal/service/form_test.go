package service

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"fan-globe/internal/geo"
	"fan-globe/internal/models"
	"fan-globe/internal/observability"
	"fan-globe/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockResolver is a mock implementation of the Resolver interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, zip string) (models.GeoPlace, error) {
	args := m.Called(ctx, zip)
	return args.Get(0).(models.GeoPlace), args.Error(1)
}

var fixedNow = time.Date(2025, time.June, 1, 12, 30, 45, 123_000_000, time.UTC)

func newTestForm(t *testing.T, resolver Resolver) (*FormController, *SubmissionStore) {
	t.Helper()
	store := newTestStore(t, repository.NewMemoryStore())
	form := NewFormController(resolver, store, clockwork.NewFakeClockAt(fixedNow), observability.NewMetricsForTesting(), zerolog.New(io.Discard))

	n := 0
	form.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return form, store
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   SignupInput
		field   string
		message string
	}{
		{name: "valid", input: SignupInput{Name: "Ada", Email: "a@b.co", Zip: "10001"}},
		{name: "empty name", input: SignupInput{Name: "", Email: "a@b.co", Zip: "10001"}, field: "name", message: MessageNameMissing},
		{name: "blank name", input: SignupInput{Name: "   ", Email: "a@b.co", Zip: "10001"}, field: "name", message: MessageNameMissing},
		{name: "email without tld", input: SignupInput{Name: "Ada", Email: "a@b", Zip: "10001"}, field: "email", message: MessageEmailBad},
		{name: "email without at", input: SignupInput{Name: "Ada", Email: "abc", Zip: "10001"}, field: "email", message: MessageEmailBad},
		{name: "empty email", input: SignupInput{Name: "Ada", Email: "", Zip: "10001"}, field: "email", message: MessageEmailBad},
		{name: "one letter tld", input: SignupInput{Name: "Ada", Email: "a@b.c", Zip: "10001"}, field: "email", message: MessageEmailBad},
		{name: "uppercase email", input: SignupInput{Name: "Ada", Email: "ADA@EXAMPLE.COM", Zip: "10001"}},
		{name: "short zip", input: SignupInput{Name: "Ada", Email: "a@b.co", Zip: "1234"}, field: "zip", message: MessageZipShort},
		{name: "zip padded with spaces", input: SignupInput{Name: "Ada", Email: "a@b.co", Zip: " 1234 "}, field: "zip", message: MessageZipShort},
		{name: "zip plus four", input: SignupInput{Name: "Ada", Email: "a@b.co", Zip: "10001-1234"}},
		{name: "name checked first", input: SignupInput{Email: "bad", Zip: "1"}, field: "name", message: MessageNameMissing},
		{name: "email checked before zip", input: SignupInput{Name: "Ada", Email: "bad", Zip: "1"}, field: "email", message: MessageEmailBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.input)

			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.message, ve.Message)
		})
	}
}

func TestValidate_Normalizes(t *testing.T) {
	out, err := Validate(SignupInput{Name: "  Ada Lovelace ", Email: " Ada@Example.COM ", Zip: " 10001 "})
	require.NoError(t, err)
	assert.Equal(t, SignupInput{Name: "Ada Lovelace", Email: "ada@example.com", Zip: "10001"}, out)
}

func TestFormController_SubmitSeedZip(t *testing.T) {
	ctx := context.Background()
	form, store := newTestForm(t, geo.NewResolver(nil, 0, nil, zerolog.New(io.Discard)))

	require.NoError(t, store.Append(ctx, row("old", "Austin", "TX")))

	got, err := form.Submit(ctx, SignupInput{Name: " Ada ", Email: "Ada@Example.com", Zip: "10001"})
	require.NoError(t, err)
	require.NotNil(t, got)

	expected := models.Submission{
		ID:        "id-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Zip:       "10001",
		City:      "New York",
		State:     "NY",
		Lat:       40.7506,
		Lon:       -73.9972,
		Timestamp: "2025-06-01T12:30:45.123Z",
	}
	assert.Equal(t, expected, *got)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, expected, all[0])

	state := form.Form()
	assert.Equal(t, SignupInput{}, state.Draft)
	assert.Equal(t, MessagePinned, state.Message)
	assert.True(t, state.HasSubmitted)
	assert.False(t, state.Pending)
}

func TestFormController_SubmitRemoteZip(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "12345").
		Return(models.GeoPlace{City: "Schenectady", State: "NY", Lat: 42.8333, Lon: -74.0582}, nil).Once()

	form, store := newTestForm(t, resolver)
	got, err := form.Submit(context.Background(), SignupInput{Name: "Ada", Email: "a@b.co", Zip: "12345"})
	require.NoError(t, err)

	assert.Equal(t, "Schenectady", got.City)
	assert.Equal(t, 1, store.Len())
	resolver.AssertExpectations(t)
}

func TestFormController_ValidationDoesNotMutate(t *testing.T) {
	resolver := new(MockResolver)
	form, store := newTestForm(t, resolver)

	input := SignupInput{Name: "Ada", Email: "a@b.co", Zip: "1234"}
	got, err := form.Submit(context.Background(), input)

	assert.Nil(t, got)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, input, form.Form().Draft, "draft is kept so the fan can fix it")
	assert.Equal(t, MessageZipShort, form.Form().Message)
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestFormController_ResolutionFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: geo.ErrNotFound},
		{name: "lookup failure", err: &geo.LookupError{Zip: "99999", Err: assert.AnError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(MockResolver)
			resolver.On("Resolve", mock.Anything, "99999").Return(models.GeoPlace{}, tt.err)

			form, store := newTestForm(t, resolver)
			got, err := form.Submit(context.Background(), SignupInput{Name: "Ada", Email: "a@b.co", Zip: "99999"})

			assert.Nil(t, got)
			var resErr *ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, MessageUnresolved, err.Error())
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 0, store.Len())
			assert.Equal(t, MessageUnresolved, form.Form().Message)
		})
	}
}

func TestFormController_RejectsConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "12345").
		Run(func(mock.Arguments) { <-release }).
		Return(models.GeoPlace{City: "Schenectady", State: "NY"}, nil).Once()

	form, store := newTestForm(t, resolver)

	type result struct {
		row *models.Submission
		err error
	}
	done := make(chan result, 1)
	go func() {
		r, err := form.Submit(context.Background(), SignupInput{Name: "Ada", Email: "a@b.co", Zip: "12345"})
		done <- result{r, err}
	}()

	require.Eventually(t, func() bool { return form.Form().Pending }, time.Second, time.Millisecond)

	_, err := form.Submit(context.Background(), SignupInput{Name: "Bob", Email: "b@b.co", Zip: "12345"})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, 1, store.Len())
	resolver.AssertExpectations(t)
}

func TestFormController_DiscardsResolutionAfterClose(t *testing.T) {
	release := make(chan struct{})
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "12345").
		Run(func(mock.Arguments) { <-release }).
		Return(models.GeoPlace{City: "Schenectady", State: "NY"}, nil).Once()

	form, store := newTestForm(t, resolver)

	done := make(chan error, 1)
	go func() {
		r, err := form.Submit(context.Background(), SignupInput{Name: "Ada", Email: "a@b.co", Zip: "12345"})
		assert.Nil(t, r)
		done <- err
	}()

	require.Eventually(t, func() bool { return form.Form().Pending }, time.Second, time.Millisecond)
	form.Close()
	close(release)

	assert.NoError(t, <-done)
	assert.Equal(t, 0, store.Len())

	r, err := form.Submit(context.Background(), SignupInput{Name: "Ada", Email: "a@b.co", Zip: "10001"})
	assert.Nil(t, r)
	assert.NoError(t, err)
}

func TestFormController_StoreFailure(t *testing.T) {
	kv := new(MockKeyValueStore)
	kv.On("Get", mock.Anything, StorageKey).Return(nil, repository.ErrKeyNotFound)
	kv.On("Put", mock.Anything, StorageKey, mock.Anything).Return(assert.AnError)
	store := newTestStore(t, kv)

	form := NewFormController(geo.NewResolver(nil, 0, nil, zerolog.New(io.Discard)), store, nil, nil, zerolog.New(io.Discard))
	_, err := form.Submit(context.Background(), SignupInput{Name: "Ada", Email: "a@b.co", Zip: "10001"})

	assert.ErrorIs(t, err, assert.AnError)

	state := form.Form()
	assert.False(t, state.HasSubmitted)
	assert.False(t, state.Pending)
	assert.Equal(t, MessageSaveFailed, state.Message)
}

func TestFormController_SeedDemo(t *testing.T) {
	ctx := context.Background()
	form, store := newTestForm(t, new(MockResolver))
	require.NoError(t, store.Append(ctx, row("old", "Austin", "TX")))

	rows, err := form.SeedDemo(ctx)
	require.NoError(t, err)

	seed := geo.Seed()
	require.Len(t, rows, len(seed))
	for i, e := range seed {
		assert.Equal(t, "Fan "+e.Zip, rows[i].Name)
		assert.Equal(t, "fan"+e.Zip+"@example.com", rows[i].Email)
		assert.Equal(t, e.Place, rows[i].Place())
		assert.Equal(t, "2025-06-01T12:30:45.123Z", rows[i].Timestamp)
	}

	zips := make([]string, len(rows))
	for i, r := range rows {
		zips[i] = r.Zip
	}
	assert.Equal(t, []string{"10001", "30301", "48201", "60601", "73301", "80202", "90001", "94102", "98101", "02108"}, zips)

	all := store.All()
	assert.Equal(t, rows, all[:len(seed)])
	assert.Equal(t, "old", all[len(seed)].ID)
	assert.Equal(t, MessageDemoLoaded, form.Form().Message)

	board := store.Leaderboard()
	assert.Equal(t, models.LeaderboardEntry{Place: "Austin, TX", Count: 2}, board[0])
}

func TestFormController_UpdateDraft(t *testing.T) {
	form, _ := newTestForm(t, new(MockResolver))

	state := form.UpdateDraft(SignupInput{Name: "Ad"})
	assert.Equal(t, "Ad", state.Draft.Name)
	assert.Equal(t, "Ad", form.Form().Draft.Name)
}
