package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

const callerID = "65f1c0ffee65f1c0ffee0001"

func TestUserHandler_Me(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != callerID {
				t.Fatalf("expected caller id, got %s", id)
			}
			return &domain.User{ID: id, Email: "host@example.com", PasswordHash: "$2a$secret", Role: domain.RoleHost}, nil
		},
	}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/users/me", "", callerID)
	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	decode(t, rec, &resp)
	if resp["_id"] != callerID || resp["email"] != "host@example.com" || resp["role"] != domain.RoleHost {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatal("password must never be serialized")
	}
}

func TestUserHandler_Me_NotFound(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}, nil)

	c, _ := newJSONContext(e, http.MethodGet, "/users/me", "", callerID)
	if code := httpStatus(t, handler.Me(c)); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestUserHandler_Me_WithoutIdentity(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{}, nil)

	c, _ := newJSONContext(e, http.MethodGet, "/users/me", "", "")
	if code := httpStatus(t, handler.Me(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestUserHandler_UpdateMe_PassesOnlySuppliedFields(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			if in.Email == nil || *in.Email != "new@example.com" {
				t.Fatalf("expected email update, got %+v", in)
			}
			if in.Password != nil || in.Role != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			return &domain.User{ID: id, Email: *in.Email, Role: domain.RoleGuest}, nil
		},
	}, nil)

	c, rec := newJSONContext(e, http.MethodPut, "/users/me", `{"email":"new@example.com"}`, callerID)
	if err := handler.UpdateMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateMe_Validation(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}, nil)

	c, _ := newJSONContext(e, http.MethodPut, "/users/me", `{"email":"","role":"Owner"}`, callerID)
	got := violations(t, handler.UpdateMe(c))
	if got["email"] == "" || got["role"] == "" {
		t.Fatalf("expected email and role violations, got %+v", got)
	}
}

func TestUserHandler_DeleteMe(t *testing.T) {
	e := newEcho()
	deleted := map[string]bool{}
	handler := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			if deleted[id] {
				return domain.ErrUserNotFound
			}
			deleted[id] = true
			return nil
		},
	}, nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/users/me", "", callerID)
	if err := handler.DeleteMe(c); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, _ = newJSONContext(e, http.MethodDelete, "/users/me", "", callerID)
	if code := httpStatus(t, handler.DeleteMe(c)); code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", code)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "1", Email: "a@example.com", Role: domain.RoleHost},
				{ID: "2", Email: "b@example.com", Role: domain.RoleGuest},
			}, nil
		},
	}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/users", "", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	decode(t, rec, &resp)
	if len(resp) != 2 || resp[1]["email"] != "b@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_UpdateByID(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			if id != "65f1c0ffee65f1c0ffee0099" {
				t.Fatalf("expected path id, got %s", id)
			}
			return &domain.User{ID: id, Email: "x@example.com", Role: *in.Role}, nil
		},
	}, nil)

	c, rec := newJSONContext(e, http.MethodPut, "/users/65f1c0ffee65f1c0ffee0099", `{"role":"Host"}`, "")
	c.SetParamNames("userId")
	c.SetParamValues("65f1c0ffee65f1c0ffee0099")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	decode(t, rec, &resp)
	if resp["role"] != domain.RoleHost {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_DeleteByID_NotFound(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, id string) error { return domain.ErrUserNotFound },
	}, nil)

	c, _ := newJSONContext(e, http.MethodDelete, "/users/nope", "", "")
	c.SetParamNames("userId")
	c.SetParamValues("nope")
	if code := httpStatus(t, handler.Delete(c)); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestUserHandler_MyAccommodations(t *testing.T) {
	e := newEcho()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	handler := NewUserHandler(&stubUserService{}, &stubAccommodationService{
		listByHostFn: func(ctx context.Context, hostID string) ([]*domain.Accommodation, error) {
			if hostID != callerID {
				t.Fatalf("expected caller id, got %s", hostID)
			}
			return []*domain.Accommodation{{ID: "a1", Name: "EUROPA PLATZ", MaxGuests: 4, HostID: hostID, CreatedAt: now, UpdatedAt: now}}, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/users/me/accommodations", "", callerID)
	if err := handler.MyAccommodations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	decode(t, rec, &resp)
	if len(resp) != 1 || resp[0]["host"] != callerID || resp[0]["maxGuests"] != float64(4) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_MyAccommodations_Empty(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{}, &stubAccommodationService{
		listByHostFn: func(ctx context.Context, hostID string) ([]*domain.Accommodation, error) {
			return []*domain.Accommodation{}, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/users/me/accommodations", "", callerID)
	if err := handler.MyAccommodations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Fatalf("expected empty array, got %d %q", rec.Code, rec.Body.String())
	}
}
