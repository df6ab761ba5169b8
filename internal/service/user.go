package service

import (
	"errors"

	"burgerhouse/internal/domain"
	"burgerhouse/pkg/utils"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so login failures are indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// allowedSelfRoles is the allow-list for self-registration. Requested roles
// outside it are dropped silently, never rejected.
var allowedSelfRoles = map[string]struct{}{
	domain.RoleUser: {},
}

type RegisterInput struct {
	Email     string
	Password  string
	Nom       string
	Prenom    string
	Telephone string
	Roles     []string
}

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates an account. The email must be unused (exact match as
// stored); the password is bcrypt-hashed before the record is persisted and
// the plaintext is never stored or logged.
func (s *UserService) Register(in RegisterInput) (*domain.User, error) {
	existing, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflictf("email already in use")
	}

	u := &domain.User{
		Email:     in.Email,
		Password:  in.Password,
		Nom:       in.Nom,
		Prenom:    in.Prenom,
		Telephone: in.Telephone,
		Roles:     filterRoles(in.Roles),
	}
	if err := checkStruct(u); err != nil {
		return nil, err
	}

	// Every non-empty password field is hashed during a persist; nothing
	// ever reads a hash back to re-hash it.
	if u.Password != "" {
		u.Password = utils.HashPassword(u.Password)
	}

	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies credentials for the login gate.
func (s *UserService) Authenticate(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin creates the ROLE_ADMIN account unless the email is already
// taken. Safe to run on every deploy.
func (s *UserService) EnsureAdmin(email, password string) (*domain.User, bool, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	u := &domain.User{
		Email:     email,
		Password:  password,
		Nom:       "Admin",
		Prenom:    "Admin",
		Telephone: "0000000000",
		Roles:     []string{domain.RoleAdmin},
	}
	if err := checkStruct(u); err != nil {
		return nil, false, err
	}
	if u.Password != "" {
		u.Password = utils.HashPassword(u.Password)
	}
	if err := s.users.Create(u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *UserService) Get(id uint) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFoundf("user not found")
	}
	return u, nil
}

func filterRoles(requested []string) []string {
	var roles []string
	for _, r := range requested {
		if _, ok := allowedSelfRoles[r]; ok {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}
	return roles
}
