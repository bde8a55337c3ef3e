package users

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/pagination"
	"petify-api/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context, page pagination.Request) ([]User, int, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pagination.Slice(out, page), len(out), nil
}

func (r *testRepo) SearchByEmail(ctx context.Context, q string) ([]User, error) {
	out := make([]User, 0)
	for _, u := range r.byID {
		if strings.Contains(u.Email, strings.ToLower(q)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	fixed := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestSignup_DefaultsAndDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	u, err := svc.Signup(ctx, SignupInput{Email: "  " + strings.ToUpper(addr("ana")) + " ", Name: "Ana"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.Email != addr("ana") || u.Role != auth.RoleUser || u.IsBanned {
		t.Fatalf("unexpected user: %+v", u)
	}

	_, err = svc.Signup(ctx, SignupInput{Email: addr("ana")})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestSignup_InvalidEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup(context.Background(), SignupInput{Email: ""})
	if !apperr.IsKind(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}
	_, err = svc.Signup(context.Background(), SignupInput{Email: "not-an-email"})
	if !apperr.IsKind(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}
}

func TestGetRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	if _, err := svc.GetRole(ctx, addr("ghost")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, _ = svc.Signup(ctx, SignupInput{Email: addr("ana")})
	role, err := svc.GetRole(ctx, addr("ana"))
	if err != nil || role != auth.RoleUser {
		t.Fatalf("unexpected role=%q err=%v", role, err)
	}
}

func TestSetRole_RejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	u, _ := svc.Signup(ctx, SignupInput{Email: addr("ana")})

	if _, err := svc.SetRole(ctx, u.ID, auth.Role("owner")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.SetRole(ctx, "missing", auth.RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	updated, err := svc.SetRole(ctx, u.ID, auth.RoleAdmin)
	if err != nil || updated.Role != auth.RoleAdmin {
		t.Fatalf("unexpected %+v err=%v", updated, err)
	}
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	plain, _ := svc.Signup(ctx, SignupInput{Email: addr("plain")})
	admin, _ := svc.Signup(ctx, SignupInput{Email: addr("boss")})
	_, _ = svc.SetRole(ctx, admin.ID, auth.RoleAdmin)
	banned, _ := svc.Signup(ctx, SignupInput{Email: addr("banned")})
	_, _ = svc.SetBanned(ctx, banned.ID, true)

	cases := []struct {
		email    string
		required auth.Role
		kind     *apperr.Kind
	}{
		{plain.Email, auth.RoleUser, nil},
		{plain.Email, auth.RoleAdmin, kindPtr(apperr.Forbidden)},
		{admin.Email, auth.RoleAdmin, nil},
		{addr("ghost"), auth.RoleUser, nil},
		{addr("ghost"), auth.RoleAdmin, kindPtr(apperr.Forbidden)},
		{banned.Email, auth.RoleUser, kindPtr(apperr.Forbidden)},
	}

	for _, tc := range cases {
		err := svc.Authorize(ctx, tc.email, tc.required)
		if tc.kind == nil {
			if err != nil {
				t.Fatalf("%s/%s: unexpected error %v", tc.email, tc.required, err)
			}
			continue
		}
		if !apperr.IsKind(err, *tc.kind) {
			t.Fatalf("%s/%s: expected %s, got %v", tc.email, tc.required, *tc.kind, err)
		}
	}
}

func TestPromoteByEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, _ = svc.Signup(ctx, SignupInput{Email: addr("first")})

	u, err := svc.PromoteByEmail(ctx, " "+strings.ToUpper(addr("first")))
	if err != nil || u.Role != auth.RoleAdmin {
		t.Fatalf("unexpected %+v err=%v", u, err)
	}
	if err := svc.Authorize(ctx, addr("first"), auth.RoleAdmin); err != nil {
		t.Fatalf("promoted user should pass admin check: %v", err)
	}
}

func TestSearchByEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, _ = svc.Signup(ctx, SignupInput{Email: addr("vet")})
	_, _ = svc.Signup(ctx, SignupInput{Email: "ana" + "@example.org"})

	items, err := svc.SearchByEmail(ctx, "PETIFY")
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 match, got %d err=%v", len(items), err)
	}
	if _, err := svc.SearchByEmail(ctx, " "); !apperr.IsKind(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}
}

func kindPtr(k apperr.Kind) *apperr.Kind { return &k }

func addr(local string) string { return local + "@petify.test" }
