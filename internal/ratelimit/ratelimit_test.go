package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestKeyed_BurstThenDeny(t *testing.T) {
	k := New(1, 2)

	if !k.Allow("books") {
		t.Fatal("first call within burst should be allowed")
	}
	if !k.Allow("books") {
		t.Fatal("second call within burst should be allowed")
	}
	if k.Allow("books") {
		t.Fatal("third immediate call should exceed the burst")
	}
}

func TestKeyed_IndependentKeys(t *testing.T) {
	k := New(1, 1)

	if !k.Allow("gateway") {
		t.Fatal("fresh key should be allowed")
	}
	if k.Allow("gateway") {
		t.Fatal("second call on same key should be denied")
	}
	// A different key has its own bucket.
	if !k.Allow("books") {
		t.Fatal("separate key should not share the exhausted bucket")
	}
}

func TestKeyed_WaitRespectsContext(t *testing.T) {
	k := New(0.1, 1) // one token, 10s refill
	k.Allow("slow")  // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := k.Wait(ctx, "slow"); err == nil {
		t.Fatal("Wait should fail once the context deadline passes")
	}
}

func TestKeyed_WaitAllowsWhenTokenAvailable(t *testing.T) {
	k := New(100, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := k.Wait(ctx, "fast"); err != nil {
		t.Fatalf("Wait with available token should succeed, got %v", err)
	}
}
