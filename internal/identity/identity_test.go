package identity

import (
	"context"
	"errors"
	"testing"
)

func TestPrincipalDefaultsToAnonymous(t *testing.T) {
	if got := Principal(context.Background()); got != Anonymous {
		t.Errorf("Principal = %q, want %q", got, Anonymous)
	}
}

func TestWithPrincipalRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "alice")
	if got := Principal(ctx); got != "alice" {
		t.Errorf("Principal = %q, want alice", got)
	}
}

func TestRunAsScopesPrincipalToCallback(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "alice")

	var inside string
	err := RunAs(ctx, "system", func(ctx context.Context) error {
		inside = Principal(ctx)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if inside != "system" {
		t.Errorf("principal inside RunAs = %q, want system", inside)
	}
	if got := Principal(ctx); got != "alice" {
		t.Errorf("caller principal after RunAs = %q, want alice", got)
	}
}

func TestRunAsPropagatesError(t *testing.T) {
	want := errors.New("boom")
	err := RunAs(context.Background(), "system", func(context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("RunAs error = %v, want %v", err, want)
	}
}
