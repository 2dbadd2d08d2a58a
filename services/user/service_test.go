package user

import (
	"testing"

	"fixly/models"
	"fixly/utils"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (s *stubUserRepo) GetByID(id string) (*models.User, error) { return s.users[id], nil }
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (s *stubUserRepo) Create(u *models.User) error { s.users[u.ID] = u; return nil }
func (s *stubUserRepo) Update(u *models.User) error { s.users[u.ID] = u; return nil }
func (s *stubUserRepo) Delete(id string) error      { delete(s.users, id); return nil }

func TestSignup(t *testing.T) {
	svc := &DefaultUserService{Repo: newStubUserRepo()}

	created, err := svc.Signup(models.User{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.Token == "" {
		t.Fatal("signup should issue an id and a token")
	}
	if created.Email != "ada@example.com" {
		t.Errorf("email should be normalized, got %q", created.Email)
	}
	if created.Password != "" {
		t.Error("plaintext password must not survive signup")
	}
	if created.PasswordHash == "" || created.PasswordHash == "hunter22" {
		t.Error("password must be stored hashed")
	}
	if created.TokenHash != utils.HashToken(created.Token) {
		t.Error("stored token hash should match the issued token")
	}

	sub, role, err := utils.ExtractIDFromToken(created.Token)
	if err != nil {
		t.Fatal(err)
	}
	if sub != created.ID || role != "user" {
		t.Errorf("token claims sub=%q role=%q", sub, role)
	}
}

func TestSignupValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newStubUserRepo()}

	if _, err := svc.Signup(models.User{Email: "a@b.com", Password: "x"}); err == nil {
		t.Error("missing name should be rejected")
	}
	if _, err := svc.Signup(models.User{Name: "A", Password: "x"}); err == nil {
		t.Error("missing email should be rejected")
	}

	if _, err := svc.Signup(models.User{Name: "A", Email: "a@b.com", Password: "pw123456"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Signup(models.User{Name: "B", Email: "a@b.com", Password: "other"}); err == nil {
		t.Error("duplicate email should be rejected")
	}
}

func TestSigninRotatesToken(t *testing.T) {
	svc := &DefaultUserService{Repo: newStubUserRepo()}

	created, err := svc.Signup(models.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Signin("ada@example.com", "wrong"); err == nil {
		t.Error("wrong password should be rejected")
	}
	if _, err := svc.Signin("nobody@example.com", "hunter22"); err == nil {
		t.Error("unknown email should be rejected")
	}

	signed, err := svc.Signin("ada@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if signed.Token == "" || signed.TokenHash != utils.HashToken(signed.Token) {
		t.Error("signin should issue a fresh token with a matching hash")
	}
	if signed.ID != created.ID {
		t.Error("signin should return the same account")
	}
}

func TestSignoutClearsSession(t *testing.T) {
	repo := newStubUserRepo()
	svc := &DefaultUserService{Repo: repo}

	created, err := svc.Signup(models.User{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Signout(created.ID); err != nil {
		t.Fatal(err)
	}
	if repo.users[created.ID].TokenHash != "" {
		t.Error("signout should clear the stored token hash")
	}
	if err := svc.Signout("missing"); err == nil {
		t.Error("signing out an unknown user should fail")
	}
}
