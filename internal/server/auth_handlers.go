package server

import (
	"errors"

	"devconnector/internal/gravatar"
	"devconnector/internal/middleware"
	"devconnector/internal/models"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles POST /api/users. It validates input, derives the avatar
// from the email, hashes the password and issues a token for the new account.
func (s *Server) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateName(req.Name); err != nil {
		return respondErr(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return respondErr(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return respondErr(c, models.NewValidationError(err.Error()))
	}

	existing, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return respondErr(c, err)
	}
	if existing != nil {
		return respondErr(c, models.NewConflictError("User already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondErr(c, models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Avatar:   gravatar.URL(req.Email, gravatar.DefaultOptions),
	}
	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// index on email is the authority.
		return respondErr(c, err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return respondErr(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"user_id", user.ID)

	return c.JSON(TokenResponse{Token: token, User: user})
}

// Login handles POST /api/auth. An unknown email and a wrong password produce
// the same response so credentials cannot be probed.
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return respondErr(c, models.NewValidationError(err.Error()))
	}
	if req.Password == "" {
		return respondErr(c, models.NewValidationError("password is required"))
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return respondErr(c, err)
	}
	if user == nil {
		return respondErr(c, models.NewValidationError("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return respondErr(c, models.NewValidationError("Invalid credentials"))
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return respondErr(c, models.NewInternalError(err))
	}

	return c.JSON(TokenResponse{Token: token, User: user})
}

// GetAuthUser handles GET /api/auth, returning the account behind the token.
func (s *Server) GetAuthUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		// Only a genuinely missing account means the token outlived it;
		// store failures stay 500s.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return respondErr(c, models.NewUnauthorizedError("User no longer exists"))
		}
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// DeleteAccount handles DELETE /api/auth. It removes the account together
// with its profile, posts and all engagement rows in one transaction.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.userRepo.Delete(c.UserContext(), userID); err != nil {
		return respondErr(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "account deleted",
		"user_id", userID)

	return c.JSON(fiber.Map{"msg": "User removed"})
}
