package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

// RegisterUserRequest is the sign-up body. bcrypt only uses the first 72
// bytes of a password, so longer ones are rejected.
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterUserRequest) Validate() error {
	return validation.Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

type GetUserRequest struct {
	ID int64 `param:"id" validate:"required,gt=0,lte=2147483647"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

type UserResponse struct {
	User *model.User `json:"user"`
}

// UserHandler serves the /users endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// Register handles POST /api/v1/users.
func (h *UserHandler) Register(c echo.Context, req *RegisterUserRequest) (*UserResponse, error) {
	user, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

// Login handles POST /api/v1/users/login. A wrong email and a wrong
// password produce the same 401.
func (h *UserHandler) Login(c echo.Context, req *LoginRequest) (*UserResponse, error) {
	user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

// GetByID handles GET /api/v1/users/:id.
func (h *UserHandler) GetByID(c echo.Context, req *GetUserRequest) (*UserResponse, error) {
	user, err := h.users.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}
