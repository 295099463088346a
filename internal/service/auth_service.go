package service

import (
	"context"
	"fmt"

	"photoshare/internal/auth"
	"photoshare/internal/models"
	"photoshare/internal/observability"
	"photoshare/internal/repository"
	"photoshare/internal/storage"
	"photoshare/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Login failures. They are kept distinct so clients can tell an unknown username from a
// wrong password; both map to 401.
var (
	ErrUserNotFound       = models.NewUnauthorizedError("User does not exist!")
	ErrInvalidCredentials = models.NewUnauthorizedError("Invalid credentials!")
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Location  string
	Biography string
	Profile   *Upload
}

// AuthService registers users, checks credentials and issues tokens.
type AuthService struct {
	users      repository.UserRepository
	blobs      storage.Store
	tokens     *auth.TokenService
	bcryptCost int
	dummyHash  []byte
}

// NewAuthService returns an AuthService. A zero bcryptCost uses bcrypt.DefaultCost.
func NewAuthService(users repository.UserRepository, blobs storage.Store, tokens *auth.TokenService, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	// Compared against when the username is unknown so both failures cost one bcrypt run.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("photoshare-dummy-password"), bcryptCost)
	return &AuthService{
		users:      users,
		blobs:      blobs,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// Register validates the form, stores the profile photo and inserts the user. Nothing is
// written when validation fails, and the photo is removed again if the insert fails.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (user *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "AuthService", "Register")
	defer func() {
		observability.EndSpan(span, err)
		observability.Registrations.WithLabelValues(registrationResult(err)).Inc()
	}()

	var form validation.Form
	form.Required("Username", in.Username)
	form.Required("Password", in.Password)
	form.Required("First Name", in.FirstName)
	form.Required("Last Name", in.LastName)
	form.Required("Email", in.Email)
	form.Required("Location", in.Location)
	form.Required("Biography", in.Biography)
	form.Image("Profile", in.Profile.name(), in.Profile.bytes(), in.Profile.present())
	if err := form.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("hash password: %w", err))
	}

	filename, err := s.blobs.Save(in.Profile.Filename, in.Profile.Content)
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("save profile photo: %w", err))
	}

	user = &models.User{
		Username:  in.Username,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Location:  in.Location,
		Biography: in.Biography,
		Profile:   filename,
	}
	if err := s.users.Create(ctx, user); err != nil {
		discardBlob(ctx, s.blobs, filename)
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when password matches the stored hash.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if models.HasCode(err, models.CodeNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login validates the form, authenticates and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (token string, err error) {
	ctx, span := observability.StartSpan(ctx, "AuthService", "Login")
	defer func() {
		observability.EndSpan(span, err)
		observability.Logins.WithLabelValues(loginResult(err)).Inc()
	}()

	var form validation.Form
	form.Required("Username", username)
	form.Required("Password", password)
	if err := form.Err(); err != nil {
		return "", err
	}

	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err = s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

func registrationResult(err error) string {
	switch {
	case err == nil:
		return observability.ResultSuccess
	case models.HasCode(err, models.CodeValidation):
		return observability.ResultInvalid
	case models.HasCode(err, models.CodeConflict):
		return observability.ResultConflict
	default:
		return observability.ResultError
	}
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return observability.ResultSuccess
	case models.HasCode(err, models.CodeValidation), models.HasCode(err, models.CodeUnauthorized):
		return observability.ResultInvalid
	default:
		return observability.ResultError
	}
}
