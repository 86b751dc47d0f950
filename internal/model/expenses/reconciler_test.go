package expenses

import (
	"context"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/expenses/mock"
)

const owner = "owner-1"

var errBoom = errors.New("boom")

func day(d int) civil.Date {
	return civil.Date{Year: 2024, Month: time.March, Day: d}
}

func rec(id string, d int) expense.Record {
	return expense.Record{
		ID:          id,
		Description: "item " + id,
		Amount:      10,
		Currency:    currency.MKD,
		Category:    expense.Food,
		Date:        day(d),
		Owner:       owner,
	}
}

func ids(records []expense.Record) []string {
	res := make([]string, 0, len(records))
	for _, r := range records {
		res = append(res, r.ID)
	}
	return res
}

func assertSorted(t *testing.T, records []expense.Record) {
	t.Helper()
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Date.After(records[i-1].Date), "records %d and %d out of order", i-1, i)
	}
}

func newStore(t *testing.T) *mock.StoreMock {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)
	return mock.NewStoreMock(m)
}

// initialized returns a reconciler loaded with records for owner. Later
// FetchAll calls return whatever the test sets with FetchAllMock.Return.
func initialized(t *testing.T, records ...expense.Record) (*Reconciler, *mock.StoreMock) {
	t.Helper()
	store := newStore(t)
	store.FetchAllMock.Return(records, nil)
	r := NewReconciler(store)
	require.NoError(t, r.Initialize(context.Background(), owner))
	return r, store
}

func Test_Initialize_SortsAndDeduplicates(t *testing.T) {
	r, store := initialized(t, rec("a", 1), rec("b", 5), rec("a", 1), rec("c", 3))

	assert.Equal(t, []string{"b", "c", "a"}, ids(r.Records()))
	assert.Equal(t, owner, r.Owner())
	assert.Equal(t, uint64(1), store.FetchAllAfterCounter())
}

func Test_Initialize_FailureLeavesListEmpty(t *testing.T) {
	r, store := initialized(t, rec("a", 1))
	store.FetchAllMock.Return(nil, errBoom)

	err := r.Initialize(context.Background(), "owner-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom))
	assert.Empty(t, r.Records())
}

func Test_Initialize_EmptyOwnerClears(t *testing.T) {
	r, _ := initialized(t, rec("a", 1))

	require.NoError(t, r.Initialize(context.Background(), ""))
	assert.Empty(t, r.Records())
	assert.Equal(t, "", r.Owner())
}

func Test_Initialize_StaleResponseIsDiscarded(t *testing.T) {
	store := newStore(t)
	started := make(chan struct{})
	release := make(chan struct{})
	store.FetchAllMock.Set(func(_ context.Context, o string) ([]expense.Record, error) {
		assert.Equal(t, owner, o)
		close(started)
		<-release
		return []expense.Record{rec("a", 1)}, nil
	})

	r := NewReconciler(store)
	done := make(chan error, 1)
	go func() { done <- r.Initialize(context.Background(), owner) }()

	<-started
	r.Clear()
	close(release)

	assert.True(t, errors.Is(<-done, ErrSessionChanged))
	assert.Empty(t, r.Records())
	assert.Equal(t, "", r.Owner())
}

func Test_AddOptimistic_InsertsAtDatePosition(t *testing.T) {
	r, store := initialized(t, rec("a", 9), rec("b", 5), rec("c", 1))

	input := rec("", 5)
	input.Owner = ""
	stored := rec("new", 5)
	store.InsertMock.
		Inspect(func(_ context.Context, e expense.Record, o string) {
			assert.Equal(t, owner, e.Owner)
			assert.Empty(t, e.ID)
			assert.Equal(t, owner, o)
		}).
		Return(stored, nil)

	got, err := r.AddOptimistic(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, []string{"a", "new", "b", "c"}, ids(r.Records()))
}

func Test_AddOptimistic_FailureLeavesListUnchanged(t *testing.T) {
	r, store := initialized(t, rec("a", 9))
	store.InsertMock.Return(expense.Record{}, errBoom)

	_, err := r.AddOptimistic(context.Background(), rec("", 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom))
	assert.Equal(t, []string{"a"}, ids(r.Records()))
}

func Test_AddOptimistic_RejectsInvalidRecordWithoutStoreCall(t *testing.T) {
	r, store := initialized(t)
	bad := rec("", 3)
	bad.Amount = -5

	_, err := r.AddOptimistic(context.Background(), bad)
	assert.True(t, errors.Is(err, expense.ErrNegativeAmount))
	assert.Equal(t, uint64(0), store.InsertBeforeCounter())
}

func Test_AddOptimistic_WithoutSession(t *testing.T) {
	r := NewReconciler(newStore(t))
	_, err := r.AddOptimistic(context.Background(), rec("", 1))
	assert.True(t, errors.Is(err, ErrNoSession))
}

func Test_AddThenRemoteInsert_KeepsOneEntry(t *testing.T) {
	r, store := initialized(t, rec("a", 1))
	stored := rec("new", 2)
	store.InsertMock.Return(stored, nil)

	_, err := r.AddOptimistic(context.Background(), rec("", 2))
	require.NoError(t, err)
	r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: stored})

	assert.Equal(t, []string{"new", "a"}, ids(r.Records()))
}

func Test_RemoteInsertBeforeAddReturns_KeepsOneEntry(t *testing.T) {
	r, store := initialized(t, rec("a", 1))
	stored := rec("new", 2)
	store.InsertMock.Set(func(context.Context, expense.Record, string) (expense.Record, error) {
		r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: stored})
		return stored, nil
	})

	_, err := r.AddOptimistic(context.Background(), rec("", 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "a"}, ids(r.Records()))
}

func Test_AddOptimistic_StaleResponseIsDiscarded(t *testing.T) {
	r, store := initialized(t)
	store.InsertMock.Set(func(context.Context, expense.Record, string) (expense.Record, error) {
		r.Clear()
		return rec("new", 2), nil
	})

	_, err := r.AddOptimistic(context.Background(), rec("", 2))
	assert.True(t, errors.Is(err, ErrSessionChanged))
	assert.Empty(t, r.Records())
}

func Test_ApplyRemoteInsert_IsIdempotent(t *testing.T) {
	r, _ := initialized(t, rec("a", 3), rec("b", 1))
	ev := expense.ChangeEvent{Kind: expense.Insert, Record: rec("c", 2)}

	r.ApplyRemoteChange(ev)
	once := r.Records()
	r.ApplyRemoteChange(ev)

	assert.Equal(t, once, r.Records())
	assert.Equal(t, []string{"a", "c", "b"}, ids(once))
}

func Test_ApplyRemoteChange_IgnoresOtherOwners(t *testing.T) {
	r, _ := initialized(t, rec("a", 3))
	foreign := rec("x", 4)
	foreign.Owner = "someone-else"

	r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: foreign})
	r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Delete, Record: expense.Record{ID: "a", Owner: "someone-else"}})

	assert.Equal(t, []string{"a"}, ids(r.Records()))
}

func Test_ApplyRemoteChange_WithoutSessionIsIgnored(t *testing.T) {
	r := NewReconciler(newStore(t))
	r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: rec("a", 1)})
	assert.Empty(t, r.Records())
}

func Test_DeleteIsCommutativeWithRemoteDelete(t *testing.T) {
	remote := expense.ChangeEvent{Kind: expense.Delete, Record: expense.Record{ID: "b", Owner: owner}}

	t.Run("local first", func(t *testing.T) {
		r, store := initialized(t, rec("a", 3), rec("b", 2), rec("c", 1))
		store.DeleteMock.Inspect(func(_ context.Context, id, o string) {
			assert.Equal(t, "b", id)
			assert.Equal(t, owner, o)
		}).Return(nil)

		require.NoError(t, r.DeleteOptimistic(context.Background(), "b"))
		r.ApplyRemoteChange(remote)
		assert.Equal(t, []string{"a", "c"}, ids(r.Records()))
	})

	t.Run("remote first", func(t *testing.T) {
		r, _ := initialized(t, rec("a", 3), rec("b", 2), rec("c", 1))

		r.ApplyRemoteChange(remote)
		err := r.DeleteOptimistic(context.Background(), "b")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, []string{"a", "c"}, ids(r.Records()))
	})
}

func Test_DeleteOptimistic_RemovesBeforeStoreResponds(t *testing.T) {
	r, store := initialized(t, rec("a", 3), rec("b", 2))
	store.DeleteMock.
		Inspect(func(_ context.Context, id, _ string) {
			assert.Equal(t, "a", id)
			assert.Equal(t, []string{"b"}, ids(r.Records()))
		}).
		Return(nil)

	require.NoError(t, r.DeleteOptimistic(context.Background(), "a"))
	assert.Equal(t, uint64(1), store.DeleteAfterCounter())
}

func Test_DeleteOptimistic_FailureRefetches(t *testing.T) {
	r, store := initialized(t, rec("a", 3), rec("b", 2))
	store.DeleteMock.Return(errBoom)
	// authoritative state changed meanwhile: "b" is gone, "z" appeared
	store.FetchAllMock.Return([]expense.Record{rec("a", 3), rec("z", 4)}, nil)

	err := r.DeleteOptimistic(context.Background(), "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom))
	assert.Equal(t, []string{"z", "a"}, ids(r.Records()))
	assert.Equal(t, uint64(2), store.FetchAllAfterCounter())
}

func Test_DeleteOptimistic_RefetchesAfterCallerContextExpired(t *testing.T) {
	r, store := initialized(t, rec("a", 3), rec("b", 2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var refetchErr error
	store.DeleteMock.Return(context.DeadlineExceeded)
	store.FetchAllMock.Inspect(func(ctx context.Context, _ string) {
		refetchErr = ctx.Err()
	})

	err := r.DeleteOptimistic(ctx, "a")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, uint64(2), store.FetchAllAfterCounter())
	assert.NoError(t, refetchErr)
	assert.Equal(t, []string{"a", "b"}, ids(r.Records()))
}

func Test_DeleteOptimistic_FailedRefetchRestoresRecord(t *testing.T) {
	r, store := initialized(t, rec("a", 3), rec("b", 2))
	store.DeleteMock.Return(errBoom)
	store.FetchAllMock.Return(nil, errors.New("offline"))

	err := r.DeleteOptimistic(context.Background(), "a")
	assert.True(t, errors.Is(err, errBoom))
	assert.Equal(t, []string{"a", "b"}, ids(r.Records()))
}

func Test_DeleteOptimistic_WithoutSession(t *testing.T) {
	r := NewReconciler(newStore(t))
	assert.True(t, errors.Is(r.DeleteOptimistic(context.Background(), "a"), ErrNoSession))
}

func Test_SortInvariant_AfterMixedOperations(t *testing.T) {
	r, store := initialized(t, rec("a", 10), rec("b", 4))
	store.InsertMock.Return(rec("n1", 7), nil)
	store.DeleteMock.Return(nil)

	_, err := r.AddOptimistic(context.Background(), rec("", 7))
	require.NoError(t, err)
	r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: rec("r1", 12)})
	r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: rec("r2", 1)})
	r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: rec("r3", 7)})
	require.NoError(t, r.DeleteOptimistic(context.Background(), "b"))

	got := r.Records()
	assertSorted(t, got)
	assert.Equal(t, []string{"r1", "a", "r3", "n1", "r2"}, ids(got))
}

func Test_ConcurrentRemoteEvents_KeepUniqueIDs(t *testing.T) {
	r, _ := initialized(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := 1; d <= 20; d++ {
				r.ApplyRemoteChange(expense.ChangeEvent{Kind: expense.Insert, Record: rec(civil.Date{Year: 2024, Month: 1, Day: d}.String(), d)})
			}
		}()
	}
	wg.Wait()

	got := r.Records()
	assert.Len(t, got, 20)
	assertSorted(t, got)
}
