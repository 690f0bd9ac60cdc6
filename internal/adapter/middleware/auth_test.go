package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fieldservice-backend/internal/domain/user"
	"fieldservice-backend/internal/testutil/usermock"
	"fieldservice-backend/internal/usecase/auth"
	"fieldservice-backend/pkg/token"
)

const testSecret = "mw-test-secret"

type fakeDenylist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (d *fakeDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.revoked == nil {
		d.revoked = map[string]bool{}
	}
	d.revoked[jti] = true
	return nil
}

func (d *fakeDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.revoked[jti], nil
}

func usersWith(u *user.User) *usermock.Repo {
	return &usermock.Repo{
		GetByIDWithAccessFn: func(ctx context.Context, id uint64) (*user.User, error) {
			if u == nil || u.ID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return u, nil
		},
	}
}

func authEcho(users *usermock.Repo, deny *fakeDenylist, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	var dl auth.Denylist
	if deny != nil {
		dl = deny
	}
	g := e.Group("", Authenticate(testSecret, users, dl))
	g.GET("/me", handler)
	return e
}

func bearerReq(t *testing.T, e *echo.Echo, tok string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if tok != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_Success(t *testing.T) {
	usr := &user.User{ID: 7, Email: "a@b.c"}
	e := authEcho(usersWith(usr), nil, func(c echo.Context) error {
		got, ok := UserFrom(c)
		if !ok || got.ID != 7 {
			t.Fatalf("user in context: %+v %v", got, ok)
		}
		if _, ok := ClaimsFrom(c); !ok {
			t.Fatal("claims missing from context")
		}
		return c.NoContent(http.StatusOK)
	})

	access, _, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if rec := bearerReq(t, e, access); rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := authEcho(usersWith(nil), nil, func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if rec := bearerReq(t, e, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	e := authEcho(usersWith(nil), nil, func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if rec := bearerReq(t, e, "not.a.jwt"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	usr := &user.User{ID: 7}
	e := authEcho(usersWith(usr), nil, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	_, refresh, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if rec := bearerReq(t, e, refresh); rec.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	usr := &user.User{ID: 7}
	deny := &fakeDenylist{}
	e := authEcho(usersWith(usr), deny, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	access, _, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := token.Parse(access, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	deny.Revoke(context.Background(), claims.ID, time.Hour)

	if rec := bearerReq(t, e, access); rec.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	e := authEcho(usersWith(nil), nil, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	access, _, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if rec := bearerReq(t, e, access); rec.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestRequirePermission(t *testing.T) {
	usr := &user.User{
		ID: 7,
		Role: &user.Role{
			Name:        "admin",
			Permissions: []user.Permission{{Name: "report.delete"}},
		},
	}
	e := echo.New()
	g := e.Group("", Authenticate(testSecret, usersWith(usr), nil))
	g.DELETE("/report/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		RequirePermission("report.delete"))
	g.DELETE("/user/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		RequirePermission("user.delete"))

	access, _, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/report/1", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+access)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("granted permission: code=%d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/user/1", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+access)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("missing permission: code=%d", rec.Code)
	}
}
