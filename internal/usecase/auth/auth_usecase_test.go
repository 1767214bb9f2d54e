package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skillforge24/skillforge-backend/internal/domain"
	"github.com/skillforge24/skillforge-backend/internal/logger"
	"github.com/skillforge24/skillforge-backend/internal/store"
)

// --- Mocks ---

type mockUserRepo struct {
	byEmail map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return domain.ErrUserAlreadyExists
	}
	user.CreatedAt = time.Now()
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type mockSessionRepo struct {
	sessions map[string]string
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]string)}
}

func (m *mockSessionRepo) Create(_ context.Context, tokenID, userID string, _ time.Duration) error {
	m.sessions[tokenID] = userID
	return nil
}

func (m *mockSessionRepo) Exists(_ context.Context, tokenID string) (bool, error) {
	_, ok := m.sessions[tokenID]
	return ok, nil
}

func (m *mockSessionRepo) Delete(_ context.Context, tokenID string) error {
	delete(m.sessions, tokenID)
	return nil
}

type nopSnapshotter struct{}

func (nopSnapshotter) Save(context.Context, *store.State) error   { return nil }
func (nopSnapshotter) Load(context.Context) (*store.State, error) { return nil, nil }

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestUseCase(t *testing.T) (*AuthUseCase, *mockUserRepo, *store.GameStore) {
	t.Helper()
	users := newMockUserRepo()
	gameStore := store.New(context.Background(), nil, nopSnapshotter{}, logger.NewNop())
	uc := NewAuthUseCase(users, newMockSessionRepo(), gameStore, testSecret, time.Hour, logger.NewNop())
	return uc, users, gameStore
}

func contributorReg() *ContributorRegistration {
	return &ContributorRegistration{
		Name:        "John Doe",
		EmailAddr:   "john@example.com",
		RawPassword: "password123",
		Skills:      "React, Node.js , TypeScript",
		Experience:  "5 years",
	}
}

// --- Tests ---

func TestRegisterContributor(t *testing.T) {
	uc, users, gameStore := newTestUseCase(t)

	userID, err := uc.Register(context.Background(), contributorReg())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if userID == "" {
		t.Fatal("empty user id")
	}

	u := users.byEmail["john@example.com"]
	if u == nil {
		t.Fatal("user not stored")
	}
	if u.PasswordHash == "password123" || u.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if len(u.Skills) != 3 || u.Skills[1] != "Node.js" {
		t.Errorf("skills not split/trimmed: %v", u.Skills)
	}

	// registration seeds the game store
	p, err := gameStore.GetProfile(userID)
	if err != nil {
		t.Fatalf("starter profile not seeded: %v", err)
	}
	if p.Role != domain.RoleContributor || p.Name != "John Doe" {
		t.Errorf("starter profile mismatch: %+v", p)
	}
	if p.Level.Current != 1 || p.Level.Experience != 0 {
		t.Errorf("starter level = %+v", p.Level)
	}
	if p.ID != p.UserID {
		t.Errorf("profile id %q != user id %q", p.ID, p.UserID)
	}
}

func TestRegisterHirer(t *testing.T) {
	uc, users, _ := newTestUseCase(t)

	reg := &HirerRegistration{
		CompanyName: "TechCorp",
		EmailAddr:   "Jobs@TechCorp.com",
		RawPassword: "password123",
		Industry:    "Software",
		Website:     "https://techcorp.com",
	}
	if _, err := uc.Register(context.Background(), reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u := users.byEmail["jobs@techcorp.com"]
	if u == nil {
		t.Fatal("email not lowercased on store")
	}
	if u.Role != domain.RoleHirer || u.Name != "TechCorp" {
		t.Errorf("hirer record mismatch: %+v", u)
	}
	if u.Industry == nil || *u.Industry != "Software" {
		t.Errorf("industry = %v", u.Industry)
	}
}

func TestRegisterValidation(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	reg := contributorReg()
	reg.RawPassword = ""
	if _, err := uc.Register(context.Background(), reg); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}

	reg = contributorReg()
	reg.EmailAddr = "not-an-email"
	if _, err := uc.Register(context.Background(), reg); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation for bad email, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	if _, err := uc.Register(context.Background(), contributorReg()); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Register(context.Background(), contributorReg()); !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Fatalf("want ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginAndValidate(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	userID, err := uc.Register(context.Background(), contributorReg())
	if err != nil {
		t.Fatal(err)
	}

	result, err := uc.Login(context.Background(), "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("empty token")
	}
	if result.User.ID != userID || result.User.Role != domain.RoleContributor {
		t.Errorf("user info mismatch: %+v", result.User)
	}

	gotID, gotRole, err := uc.ValidateToken(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if gotID != userID || gotRole != domain.RoleContributor {
		t.Errorf("claims mismatch: %q %q", gotID, gotRole)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	if _, err := uc.Register(context.Background(), contributorReg()); err != nil {
		t.Fatal(err)
	}

	if _, err := uc.Login(context.Background(), "john@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "nobody@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email must read as invalid credentials, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	if _, err := uc.Register(context.Background(), contributorReg()); err != nil {
		t.Fatal(err)
	}
	result, err := uc.Login(context.Background(), "john@example.com", "password123")
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, _, err := uc.ValidateToken(context.Background(), result.Token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("revoked token still validates: %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	if _, _, err := uc.ValidateToken(context.Background(), "not.a.jwt"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}
