package resolve

import (
	"context"
	"errors"
	"testing"
)

type fakeResolver func(ctx context.Context, addr string) ([]string, error)

func (f fakeResolver) LookupAddr(ctx context.Context, addr string) ([]string, error) {
	return f(ctx, addr)
}

func TestHostname(t *testing.T) {
	r := fakeResolver(func(_ context.Context, addr string) ([]string, error) {
		if addr != "8.8.8.8" {
			t.Fatalf("unexpected addr %q", addr)
		}
		return []string{"dns.google.", "alt.dns.google."}, nil
	})

	name, err := Hostname(context.Background(), r, "8.8.8.8")
	if err != nil {
		t.Fatalf("Hostname: %v", err)
	}
	if name != "dns.google" {
		t.Fatalf("expected 'dns.google', got %q", name)
	}
}

func TestHostnameLookupFailure(t *testing.T) {
	cause := errors.New("nxdomain")
	r := fakeResolver(func(context.Context, string) ([]string, error) {
		return nil, cause
	})

	_, err := Hostname(context.Background(), r, "192.0.2.1")
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ResolutionError, got %v", err)
	}
	if re.IP != "192.0.2.1" {
		t.Fatalf("expected IP '192.0.2.1', got %q", re.IP)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestHostnameNoRecords(t *testing.T) {
	r := fakeResolver(func(context.Context, string) ([]string, error) {
		return nil, nil
	})

	_, err := Hostname(context.Background(), r, "192.0.2.2")
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ResolutionError, got %v", err)
	}
}
