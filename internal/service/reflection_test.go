package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/calendar"
	servermocks "github.com/NapAndCommit/still-figuring-it-out/internal/mocks"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
	"github.com/NapAndCommit/still-figuring-it-out/internal/prompt"
	"github.com/NapAndCommit/still-figuring-it-out/internal/testutil"
)

// Thursday 2026-10-15; the week starts on Monday 2026-10-12.
var (
	fixedNow      = time.Date(2026, time.October, 15, 10, 30, 0, 0, time.UTC)
	fixedWeek     = time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)
	fixedClock    = func() time.Time { return fixedNow }
	fixedPrompt   = "What uncertainty am I carrying?"
	testUserID    = "user-7f3a"
	otherUserID   = "user-b210"
	errDatabase   = errors.New("database error")
	testReflectID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
)

func strPtr(s string) *string { return &s }

func newReflectionService(store model.ReflectionStore) *Reflection {
	return NewReflection(store, prompt.NewRotation(), fixedClock, testutil.MakeNoopLogger())
}

func TestReflection_GetOrCreateCurrent(t *testing.T) {
	existing := model.WeeklyReflection{
		ID:            testReflectID,
		UserID:        testUserID,
		Prompt:        fixedPrompt,
		Response:      strPtr("still thinking"),
		WeekStartDate: fixedWeek,
	}

	tests := []struct {
		name      string
		mockSetup func(*servermocks.ReflectionStore)
		want      func(*testing.T, model.WeeklyReflection)
		wantErr   bool
	}{
		{
			name: "returns existing reflection",
			mockSetup: func(store *servermocks.ReflectionStore) {
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(existing, nil).Once()
			},
			want: func(t *testing.T, got model.WeeklyReflection) {
				assert.Equal(t, existing, got)
			},
		},
		{
			name: "creates reflection with the week's prompt",
			mockSetup: func(store *servermocks.ReflectionStore) {
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(model.WeeklyReflection{}, model.ErrNotFound).Once()
				store.On("Create", mock.Anything, mock.MatchedBy(func(r model.WeeklyReflection) bool {
					return r.UserID == testUserID &&
						r.Prompt == fixedPrompt &&
						r.Response == nil &&
						r.WeekStartDate.Equal(fixedWeek) &&
						r.ID != uuid.Nil
				})).Return(func(_ context.Context, r model.WeeklyReflection) (model.WeeklyReflection, error) {
					r.CreatedAt = fixedNow
					return r, nil
				}).Once()
			},
			want: func(t *testing.T, got model.WeeklyReflection) {
				assert.Equal(t, fixedPrompt, got.Prompt)
				assert.Nil(t, got.Response)
				assert.Equal(t, calendar.WeekKey(fixedNow), calendar.WeekKey(got.WeekStartDate))
			},
		},
		{
			name: "conflict refetches the concurrently created row",
			mockSetup: func(store *servermocks.ReflectionStore) {
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(model.WeeklyReflection{}, model.ErrNotFound).Once()
				store.On("Create", mock.Anything, mock.Anything).Return(model.WeeklyReflection{}, model.ErrConflict).Once()
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(existing, nil).Once()
			},
			want: func(t *testing.T, got model.WeeklyReflection) {
				assert.Equal(t, testReflectID, got.ID)
			},
		},
		{
			name: "conflict followed by failed refetch",
			mockSetup: func(store *servermocks.ReflectionStore) {
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(model.WeeklyReflection{}, model.ErrNotFound).Once()
				store.On("Create", mock.Anything, mock.Anything).Return(model.WeeklyReflection{}, model.ErrConflict).Once()
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(model.WeeklyReflection{}, errDatabase).Once()
			},
			wantErr: true,
		},
		{
			name: "create fails",
			mockSetup: func(store *servermocks.ReflectionStore) {
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(model.WeeklyReflection{}, model.ErrNotFound).Once()
				store.On("Create", mock.Anything, mock.Anything).Return(model.WeeklyReflection{}, errDatabase).Once()
			},
			wantErr: true,
		},
		{
			name: "read fails",
			mockSetup: func(store *servermocks.ReflectionStore) {
				store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(model.WeeklyReflection{}, errDatabase).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := servermocks.NewReflectionStore(t)
			tt.mockSetup(store)

			got, err := newReflectionService(store).GetOrCreateCurrent(context.Background(), testUserID)
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := apperror.As(err)
				require.True(t, ok)
				assert.Equal(t, testUserID, appErr.UserID)
				return
			}
			require.NoError(t, err)
			tt.want(t, got)
		})
	}
}

// memReflectionStore enforces one reflection per user and week like the
// database unique index does.
type memReflectionStore struct {
	mu      sync.Mutex
	rows    map[string]model.WeeklyReflection
	creates int
}

func newMemReflectionStore() *memReflectionStore {
	return &memReflectionStore{rows: make(map[string]model.WeeklyReflection)}
}

func memKey(userID string, weekStart time.Time) string {
	return userID + "/" + calendar.WeekKey(weekStart)
}

func (s *memReflectionStore) GetByWeek(_ context.Context, userID string, weekStart time.Time) (model.WeeklyReflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[memKey(userID, weekStart)]
	if !ok {
		return model.WeeklyReflection{}, model.ErrNotFound
	}
	return r, nil
}

func (s *memReflectionStore) GetByID(_ context.Context, userID string, id uuid.UUID) (model.WeeklyReflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.ID == id && r.UserID == userID {
			return r, nil
		}
	}
	return model.WeeklyReflection{}, model.ErrNotFound
}

func (s *memReflectionStore) Create(_ context.Context, r model.WeeklyReflection) (model.WeeklyReflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memKey(r.UserID, r.WeekStartDate)
	if _, ok := s.rows[key]; ok {
		return model.WeeklyReflection{}, model.ErrConflict
	}
	s.creates++
	s.rows[key] = r
	return r, nil
}

func (s *memReflectionStore) UpdateResponse(_ context.Context, userID string, id uuid.UUID, response *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, r := range s.rows {
		if r.ID == id && r.UserID == userID {
			r.Response = response
			s.rows[k] = r
			return nil
		}
	}
	return model.ErrNotFound
}

func (s *memReflectionStore) ListByUser(_ context.Context, userID string) ([]model.WeeklyReflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.WeeklyReflection
	for _, r := range s.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestReflection_GetOrCreateCurrent_Concurrent(t *testing.T) {
	store := newMemReflectionStore()
	svc := newReflectionService(store)

	const callers = 16
	results := make([]model.WeeklyReflection, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = svc.GetOrCreateCurrent(context.Background(), testUserID)
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].ID, results[i].ID)
	}
	assert.Equal(t, 1, store.creates)
}

func TestReflection_GetOrCreateCurrent_UsersAreIsolated(t *testing.T) {
	store := newMemReflectionStore()
	svc := newReflectionService(store)

	a, err := svc.GetOrCreateCurrent(context.Background(), testUserID)
	require.NoError(t, err)
	b, err := svc.GetOrCreateCurrent(context.Background(), otherUserID)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Prompt, b.Prompt)
	assert.Equal(t, 2, store.creates)
}

func TestReflection_FetchCurrent(t *testing.T) {
	existing := model.WeeklyReflection{ID: testReflectID, UserID: testUserID, WeekStartDate: fixedWeek}

	tests := []struct {
		name   string
		result model.WeeklyReflection
		err    error
		wantOK bool
	}{
		{name: "present", result: existing, wantOK: true},
		{name: "absent", err: model.ErrNotFound},
		{name: "read failure is reported as absent", err: errDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := servermocks.NewReflectionStore(t)
			store.On("GetByWeek", mock.Anything, testUserID, fixedWeek).Return(tt.result, tt.err).Once()

			got, ok := newReflectionService(store).FetchCurrent(context.Background(), testUserID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, existing, got)
			}
		})
	}
}

func TestReflection_FetchCurrent_NeverCreates(t *testing.T) {
	store := newMemReflectionStore()
	svc := newReflectionService(store)

	_, ok := svc.FetchCurrent(context.Background(), testUserID)
	assert.False(t, ok)
	assert.Zero(t, store.creates)
}

func TestReflection_UpdateResponse(t *testing.T) {
	tests := []struct {
		name     string
		response *string
		storeErr error
		wantErr  bool
	}{
		{name: "sets response", response: strPtr("A quiet week.")},
		{name: "clears response", response: nil},
		{name: "no matching row", response: strPtr("x"), storeErr: model.ErrNotFound, wantErr: true},
		{name: "store failure", response: strPtr("x"), storeErr: errDatabase, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := servermocks.NewReflectionStore(t)
			store.On("UpdateResponse", mock.Anything, testUserID, testReflectID, tt.response).Return(tt.storeErr).Once()

			err := newReflectionService(store).UpdateResponse(context.Background(), testUserID, testReflectID, tt.response)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, testUserID, appErr.UserID)
			assert.Equal(t, testReflectID, appErr.ReflectionID)
			assert.ErrorIs(t, err, tt.storeErr)
		})
	}
}

func TestReflection_UpdateResponse_OtherUsersRowIsUntouched(t *testing.T) {
	store := newMemReflectionStore()
	svc := newReflectionService(store)

	owned, err := svc.GetOrCreateCurrent(context.Background(), testUserID)
	require.NoError(t, err)

	err = svc.UpdateResponse(context.Background(), otherUserID, owned.ID, strPtr("not mine"))
	require.Error(t, err)

	got, err := store.GetByID(context.Background(), testUserID, owned.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Response)
}

func TestReflection_ListAll(t *testing.T) {
	rows := []model.WeeklyReflection{
		{ID: uuid.New(), UserID: testUserID, WeekStartDate: fixedWeek},
		{ID: uuid.New(), UserID: testUserID, WeekStartDate: fixedWeek.AddDate(0, 0, -7)},
	}

	tests := []struct {
		name   string
		result []model.WeeklyReflection
		err    error
		want   []model.WeeklyReflection
	}{
		{name: "returns rows", result: rows, want: rows},
		{name: "no rows", result: nil, want: []model.WeeklyReflection{}},
		{name: "read failure yields empty list", err: errDatabase, want: []model.WeeklyReflection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := servermocks.NewReflectionStore(t)
			store.On("ListByUser", mock.Anything, testUserID).Return(tt.result, tt.err).Once()

			got := newReflectionService(store).ListAll(context.Background(), testUserID)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReflection_Get(t *testing.T) {
	existing := model.WeeklyReflection{ID: testReflectID, UserID: testUserID}

	t.Run("found", func(t *testing.T) {
		store := servermocks.NewReflectionStore(t)
		store.On("GetByID", mock.Anything, testUserID, testReflectID).Return(existing, nil).Once()

		got, err := newReflectionService(store).Get(context.Background(), testUserID, testReflectID)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("not found", func(t *testing.T) {
		store := servermocks.NewReflectionStore(t)
		store.On("GetByID", mock.Anything, testUserID, testReflectID).Return(model.WeeklyReflection{}, model.ErrNotFound).Once()

		_, err := newReflectionService(store).Get(context.Background(), testUserID, testReflectID)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.NewReflectionNotFound(testUserID, testReflectID).GRPCCode, appErr.GRPCCode)
	})

	t.Run("read failure", func(t *testing.T) {
		store := servermocks.NewReflectionStore(t)
		store.On("GetByID", mock.Anything, testUserID, testReflectID).Return(model.WeeklyReflection{}, errDatabase).Once()

		_, err := newReflectionService(store).Get(context.Background(), testUserID, testReflectID)
		assert.ErrorIs(t, err, errDatabase)
	})
}

func TestReflection_TimeReference(t *testing.T) {
	svc := newReflectionService(servermocks.NewReflectionStore(t))

	assert.Equal(t, "This week", svc.TimeReference(model.WeeklyReflection{WeekStartDate: fixedWeek}))
	assert.Equal(t, "About a week ago", svc.TimeReference(model.WeeklyReflection{WeekStartDate: fixedWeek.AddDate(0, 0, -7)}))
}
