package httpmiddleware

import (
	"context"
	"testing"
)

func TestSimpleTokenBucketExhausts(t *testing.T) {
	l := NewSimpleTokenBucket(3, 3)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if !l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow(ctx, "1.2.3.4") {
		t.Fatalf("expected limiter to reject after capacity is spent")
	}
}

func TestSimpleTokenBucketKeysAreIndependent(t *testing.T) {
	l := NewSimpleTokenBucket(1, 1)
	ctx := context.Background()
	if !l.Allow(ctx, "1.2.3.4") {
		t.Fatalf("first key should be allowed")
	}
	if !l.Allow(ctx, "5.6.7.8") {
		t.Fatalf("second key should have its own bucket")
	}
	if l.Allow(ctx, "1.2.3.4") {
		t.Fatalf("first key should be exhausted")
	}
}

func TestSimpleTokenBucketDefaultsCapacity(t *testing.T) {
	l := NewSimpleTokenBucket(0, 2)
	if l.capacity != 2 {
		t.Fatalf("expected capacity to fall back to rate, got %d", l.capacity)
	}
}
