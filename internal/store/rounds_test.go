package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"clover-casino/internal/store"
	"clover-casino/internal/testutil"
)

func TestBeginRoundDebitsAndLocks(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 1000); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}

	bal, err := st.GetBalance(ctx, 1)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal != 900 {
		t.Fatalf("balance = %d, want 900", bal)
	}
	r, err := st.GetRound(ctx, 1)
	if err != nil {
		t.Fatalf("get round: %v", err)
	}
	if r.Game != "blackjack" || r.Bet != 100 {
		t.Fatalf("round = %+v", r)
	}
}

func TestBeginRoundRejectsSecondRound(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 1000); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}
	err := st.BeginRound(ctx, 1, "roulette", 50, []byte(`{}`))
	if !errors.Is(err, store.ErrActiveRound) {
		t.Fatalf("err = %v, want ErrActiveRound", err)
	}

	// Balance and existing round untouched.
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 900 {
		t.Fatalf("balance = %d, want 900", bal)
	}
	r, err := st.GetRound(ctx, 1)
	if err != nil {
		t.Fatalf("get round: %v", err)
	}
	if r.Game != "blackjack" {
		t.Fatalf("round game = %q, want blackjack", r.Game)
	}
}

func TestBeginRoundInsufficientBalance(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 50); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{}`))
	if !errors.Is(err, store.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 50 {
		t.Fatalf("balance = %d, want 50", bal)
	}
	if _, err := st.GetRound(ctx, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("round err = %v, want ErrNotFound", err)
	}
}

func TestAdjustRoundBet(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 300); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}
	if err := st.AdjustRoundBet(ctx, 1, 100); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 100 {
		t.Fatalf("balance = %d, want 100", bal)
	}
	r, _ := st.GetRound(ctx, 1)
	if r.Bet != 200 {
		t.Fatalf("locked bet = %d, want 200", r.Bet)
	}

	// Short balance: nothing mutates.
	if err := st.AdjustRoundBet(ctx, 1, 500); !errors.Is(err, store.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	bal, _ = st.GetBalance(ctx, 1)
	r, _ = st.GetRound(ctx, 1)
	if bal != 100 || r.Bet != 200 {
		t.Fatalf("balance=%d bet=%d after failed adjust, want 100/200", bal, r.Bet)
	}
}

func TestAdjustRoundBetNoRound(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 300); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.AdjustRoundBet(ctx, 1, 50); !errors.Is(err, store.ErrNoActiveRound) {
		t.Fatalf("err = %v, want ErrNoActiveRound", err)
	}
}

func TestResolveRoundCreditsOnce(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 1000); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}
	entry, err := st.ResolveRound(ctx, 1, "win", 250)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if entry.Net != 150 {
		t.Fatalf("net = %d, want 150", entry.Net)
	}
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 1150 {
		t.Fatalf("balance = %d, want 1150", bal)
	}

	// Second resolve is a no-op.
	if _, err := st.ResolveRound(ctx, 1, "win", 250); !errors.Is(err, store.ErrNoActiveRound) {
		t.Fatalf("err = %v, want ErrNoActiveRound", err)
	}
	bal, _ = st.GetBalance(ctx, 1)
	if bal != 1150 {
		t.Fatalf("balance = %d after double resolve, want 1150", bal)
	}
}

func TestResolveRoundConcurrentSingleWinner(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 1000); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "roulette", 100, []byte(`{}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}

	const attempts = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := st.ResolveRound(ctx, 1, "win", 200); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("resolved %d times, want exactly 1", wins)
	}
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 1100 {
		t.Fatalf("balance = %d, want 1100", bal)
	}
}

func TestCancelRoundRefund(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 1000); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}
	if err := st.CancelRound(ctx, 1, true); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 1000 {
		t.Fatalf("balance = %d, want 1000 after refund", bal)
	}

	if err := st.CancelRound(ctx, 1, true); !errors.Is(err, store.ErrNoActiveRound) {
		t.Fatalf("err = %v, want ErrNoActiveRound", err)
	}
}

func TestCancelRoundForfeit(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 1000); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}
	if err := st.CancelRound(ctx, 1, false); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 900 {
		t.Fatalf("balance = %d, want 900 after forfeit", bal)
	}
}

func TestUpdateRoundState(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	if err := st.EnsureAccount(ctx, 1, "alice", 1000); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	if err := st.BeginRound(ctx, 1, "blackjack", 100, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("begin round: %v", err)
	}
	if err := st.UpdateRoundState(ctx, 1, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("update state: %v", err)
	}
	r, err := st.GetRound(ctx, 1)
	if err != nil {
		t.Fatalf("get round: %v", err)
	}
	if string(r.State) != `{"a":2}` {
		t.Fatalf("state = %s", r.State)
	}
	bal, _ := st.GetBalance(ctx, 1)
	if bal != 900 {
		t.Fatalf("balance changed by state update: %d", bal)
	}

	if err := st.UpdateRoundState(ctx, 2, []byte(`{}`)); !errors.Is(err, store.ErrNoActiveRound) {
		t.Fatalf("err = %v, want ErrNoActiveRound", err)
	}
}
