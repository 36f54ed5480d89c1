package services

import (
	"errors"

	"gigtax/auth"
	"gigtax/models"
	"gigtax/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The AuthService interface covers registration, login and token resolution.
type AuthService interface {
	Register(input *RegisterInput) (*RegisterResult, error)
	Login(input *LoginInput) (*LoginResult, error)
	Authenticate(key string) (*auth.Identity, error)
}

type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
}

type RegisterResult struct {
	Token   string `json:"token"`
	Address string `json:"address"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is returned with a 200 status regardless of the outcome;
// failed credentials surface as Valid=false, never as an error status.
type LoginResult struct {
	Valid   bool   `json:"valid"`
	Token   string `json:"token,omitempty"`
	Address string `json:"address,omitempty"`
}

type authService struct {
	users     repositories.UserRepository
	musicians repositories.MusicianRepository
	tokens    repositories.TokenRepository
}

var _ AuthService = (*authService)(nil)
var _ auth.Authenticator = (*authService)(nil)

// NewAuthService creates a new AuthService instance
func NewAuthService(users repositories.UserRepository, musicians repositories.MusicianRepository, tokens repositories.TokenRepository) AuthService {
	return &authService{users: users, musicians: musicians, tokens: tokens}
}

// Register creates the user/musician pair and issues the one token the
// account will ever have.
func (s *authService) Register(input *RegisterInput) (*RegisterResult, error) {
	if fields := validateRegister(input); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	_, err := s.users.FindByUsername(input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  input.Username,
		Password:  string(hashedPassword),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	musician := models.Musician{Address: input.Address}

	if err := s.users.CreateWithMusician(&user, &musician); err != nil {
		return nil, err
	}

	key, err := auth.GenerateToken(&user)
	if err != nil {
		return nil, err
	}
	token := models.AuthToken{Key: key, UserID: user.ID}
	if err := s.tokens.Create(&token); err != nil {
		return nil, err
	}

	return &RegisterResult{Token: token.Key, Address: musician.Address}, nil
}

// Login verifies the credential and hands back the registration-time token.
func (s *authService) Login(input *LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &LoginResult{Valid: false}, nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return &LoginResult{Valid: false}, nil
	}

	token, err := s.tokens.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	musician, err := s.musicians.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Valid: true, Token: token.Key, Address: musician.Address}, nil
}

// Authenticate resolves an opaque token key to the caller's identity.
// The key is looked up in the store; its contents are never trusted directly.
func (s *authService) Authenticate(key string) (*auth.Identity, error) {
	token, err := s.tokens.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	musician, err := s.musicians.FindByUserID(token.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return &auth.Identity{
		UserID:     token.UserID,
		MusicianID: musician.ID,
		Username:   token.User.Username,
	}, nil
}

func validateRegister(input *RegisterInput) []string {
	var fields []string
	if input.Username == "" || len(input.Username) > 150 {
		fields = append(fields, "username")
	}
	if input.Password == "" {
		fields = append(fields, "password")
	}
	if input.FirstName == "" || len(input.FirstName) > 150 {
		fields = append(fields, "first_name")
	}
	if input.LastName == "" || len(input.LastName) > 150 {
		fields = append(fields, "last_name")
	}
	if input.Address == "" || len(input.Address) > 100 {
		fields = append(fields, "address")
	}
	return fields
}
