package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"conectcliente/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordStore records inserts and serves a single profile.
type fakeRecordStore struct {
	mu        sync.Mutex
	profile   *models.ClientProfile
	insertErr error
	inserted  []models.Booking
}

func (f *fakeRecordStore) FindProfile(ctx context.Context, clientID string) (*models.ClientProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profile == nil || f.profile.ID != clientID {
		return nil, ErrProfileNotFound
	}
	return f.profile, nil
}

func (f *fakeRecordStore) InsertBooking(ctx context.Context, booking models.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted = append(f.inserted, booking)
	return booking.ID, nil
}

func (f *fakeRecordStore) insertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}

func newTestService(t *testing.T, identity string, store *fakeRecordStore) *DefaultWizardService {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	provider := IdentityFunc(func(ctx context.Context) (string, bool) {
		return identity, identity != ""
	})
	return &DefaultWizardService{
		Identity: provider,
		Store:    store,
		Cache:    cache,
	}
}

func runToTerminal(t *testing.T, svc *DefaultWizardService, sessionID, date string) *models.Conversation {
	t.Helper()
	ctx := context.Background()
	_, err := svc.SubmitAnswer(ctx, sessionID, "Fotos Aéreas")
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, sessionID, "Copacabana")
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, sessionID, date)
	require.NoError(t, err)
	conv, err := svc.SelectTime(ctx, sessionID, "10:00")
	require.NoError(t, err)
	return conv
}

func TestWizardServicePersistsOnceOnCompletion(t *testing.T) {
	store := &fakeRecordStore{
		profile: &models.ClientProfile{ID: "client-1", Email: "kayke@example.com", Phone: "(21) 99999-0000"},
	}
	svc := newTestService(t, "client-1", store)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx)
	require.NoError(t, err)

	date := dateWithin(10)
	final := runToTerminal(t, svc, conv.SessionID, date)
	assert.True(t, final.Finalized)
	assert.True(t, final.Persisted)

	require.Eventually(t, func() bool { return store.insertCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	store.mu.Lock()
	booking := store.inserted[0]
	store.mu.Unlock()
	assert.Equal(t, "client-1", booking.ClientID)
	assert.Equal(t, "kayke@example.com", booking.Email)
	assert.Equal(t, "(21) 99999-0000", booking.Phone)
	assert.Equal(t, []string{"Fotos Aéreas", "Copacabana", date, "10:00"}, booking.Answers)
	assert.Equal(t, "Fotos Aéreas", booking.Service)
	assert.Equal(t, "Copacabana", booking.Location)
	assert.Equal(t, date, booking.Date)
	assert.Equal(t, "10:00", booking.Time)
	assert.False(t, booking.CreatedAt.IsZero())

	// Repeated advancement after the terminal stage cannot persist twice.
	_, err = svc.SubmitAnswer(ctx, conv.SessionID, "10:00")
	assert.ErrorIs(t, err, ErrConversationFinished)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, store.insertCount())
}

func TestWizardServiceSkipsSaveWithoutIdentity(t *testing.T) {
	store := &fakeRecordStore{}
	svc := newTestService(t, "", store)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx)
	require.NoError(t, err)

	final := runToTerminal(t, svc, conv.SessionID, dateWithin(5))
	assert.True(t, final.Finalized)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, store.insertCount())
}

func TestWizardServiceAbandonsSaveWithoutProfile(t *testing.T) {
	store := &fakeRecordStore{} // no profile stored
	svc := newTestService(t, "client-1", store)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx)
	require.NoError(t, err)

	final := runToTerminal(t, svc, conv.SessionID, dateWithin(5))
	assert.True(t, final.Finalized)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, store.insertCount())
}

func TestWizardServiceAbsorbsInsertFailure(t *testing.T) {
	store := &fakeRecordStore{
		profile:   &models.ClientProfile{ID: "client-1", Email: "a@b.c", Phone: "(21) 90000-0000"},
		insertErr: errors.New("mongo unavailable"),
	}
	svc := newTestService(t, "client-1", store)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx)
	require.NoError(t, err)

	// The conversation still completes even though the write fails.
	final := runToTerminal(t, svc, conv.SessionID, dateWithin(5))
	assert.True(t, final.Finalized)

	time.Sleep(50 * time.Millisecond)
	loaded, err := svc.GetConversation(ctx, conv.SessionID)
	require.NoError(t, err)
	assert.True(t, loaded.Finalized)
}

func TestWizardServiceRejectionsLeaveSessionUntouched(t *testing.T) {
	store := &fakeRecordStore{}
	svc := newTestService(t, "client-1", store)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, conv.SessionID, "Fotos Aéreas")
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, conv.SessionID, "   ")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	loaded, err := svc.GetConversation(ctx, conv.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageLocation, loaded.Stage)
	assert.Equal(t, []string{"Fotos Aéreas"}, loaded.Answers)
}

func TestWizardServiceRestart(t *testing.T) {
	store := &fakeRecordStore{
		profile: &models.ClientProfile{ID: "client-1", Email: "a@b.c", Phone: "(21) 90000-0000"},
	}
	svc := newTestService(t, "client-1", store)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx)
	require.NoError(t, err)
	runToTerminal(t, svc, conv.SessionID, dateWithin(5))

	require.Eventually(t, func() bool { return store.insertCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	restarted, err := svc.RestartConversation(ctx, conv.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageService, restarted.Stage)
	assert.Empty(t, restarted.Answers)
	assert.False(t, restarted.Finalized)

	// Restarting does not delete the previously persisted booking, and a
	// second completed run yields a second, separate record.
	runToTerminal(t, svc, conv.SessionID, dateWithin(6))
	require.Eventually(t, func() bool { return store.insertCount() == 2 },
		2*time.Second, 10*time.Millisecond)
}

func TestWizardServiceUnknownSession(t *testing.T) {
	store := &fakeRecordStore{}
	svc := newTestService(t, "client-1", store)

	_, err := svc.SubmitAnswer(context.Background(), "missing", "Fotos Aéreas")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
