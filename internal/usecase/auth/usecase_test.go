package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fieldservice-backend/internal/domain/user"
	"fieldservice-backend/internal/testutil/usermock"
	"fieldservice-backend/pkg/token"
)

const testSecret = "test-secret"

// memDenylist is an in-memory Denylist for tests.
type memDenylist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemDenylist() *memDenylist { return &memDenylist{revoked: map[string]bool{}} }

func (d *memDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[jti] = true
	return nil
}

func (d *memDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.revoked[jti], nil
}

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestRegister_HashesPassword(t *testing.T) {
	var created *user.User
	users := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *user.User) error {
			u.ID = 1
			created = u
			return nil
		},
	}
	uc := NewUsecase(users, nil, testSecret)

	usr, err := uc.Register(context.Background(), RegisterInput{
		Name: "Tech One", Email: "tech@example.com", Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if usr.ID != 1 {
		t.Fatalf("id=%d", usr.ID)
	}
	if created.Password == "s3cretpass" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cretpass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	users := &usermock.Repo{
		EmailExistsFn: func(context.Context, string, uint64) (bool, error) {
			return true, nil
		},
	}
	uc := NewUsecase(users, nil, testSecret)

	if _, err := uc.Register(context.Background(), RegisterInput{
		Name: "X", Email: "dup@example.com", Password: "s3cretpass",
	}); !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: 7, Email: email, Password: hashOf(t, "rightpass")}, nil
		},
	}
	uc := NewUsecase(users, nil, testSecret)

	usr, pair, err := uc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "rightpass"})
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if usr.ID != 7 {
		t.Fatalf("id=%d", usr.ID)
	}
	claims, err := token.Parse(pair.AccessToken, testSecret)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.UserID != 7 || claims.Kind != token.KindAccess {
		t.Fatalf("claims: %+v", claims)
	}
	if pair.TokenType != "Bearer" || pair.ExpiresIn != int64(token.AccessTTL.Seconds()) {
		t.Fatalf("pair meta: %+v", pair)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: 7, Email: email, Password: hashOf(t, "rightpass")}, nil
		},
	}
	uc := NewUsecase(users, nil, testSecret)

	if _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "wrong"}); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(users, nil, testSecret)

	if _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "x"}); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	users := &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*user.User, error) {
			return &user.User{ID: id, Email: "a@b.c"}, nil
		},
	}
	deny := newMemDenylist()
	uc := NewUsecase(users, deny, testSecret)

	_, refresh, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}

	pair, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("Refresh err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty pair")
	}

	// the old refresh token is now revoked
	if _, err := uc.Refresh(context.Background(), refresh); !errors.Is(err, token.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken on replay, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, nil, testSecret)

	access, _, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Refresh(context.Background(), access); !errors.Is(err, token.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestLogout_RevokesAccessToken(t *testing.T) {
	deny := newMemDenylist()
	uc := NewUsecase(&usermock.Repo{}, deny, testSecret)

	access, _, err := token.GeneratePair(7, "a@b.c", testSecret)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := token.Parse(access, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if err := uc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	revoked, _ := deny.IsRevoked(context.Background(), claims.ID)
	if !revoked {
		t.Fatal("token not denylisted")
	}
}

func TestProfile_NotFound(t *testing.T) {
	users := &usermock.Repo{
		GetByIDWithAccessFn: func(context.Context, uint64) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(users, nil, testSecret)

	if _, err := uc.Profile(context.Background(), 1); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
