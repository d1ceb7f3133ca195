package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/config"
	"github.com/DhavalSuthar-24/musclemyths/internal/middleware"
	"github.com/DhavalSuthar-24/musclemyths/pkg/responses"
	"github.com/DhavalSuthar-24/musclemyths/pkg/token"
	"github.com/DhavalSuthar-24/musclemyths/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) issue(u *User) (LoginResponse, error) {
	signed, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.Secret, ac.config.JWTExpiry())
	if err != nil {
		return LoginResponse{}, fmt.Errorf("access token generation failed: %w", err)
	}
	return LoginResponse{UserResponse: FilterUserRecord(u), Token: signed}, nil
}

// @Summary      Log in
// @Description  Authenticate with username/password, or with a super admin token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=LoginResponse}
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      429   {object} responses.ErrorResponse "Too many attempts"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	if t := strings.TrimSpace(req.Token); t != "" {
		u, err := ac.repo.GetUserByToken(t)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		if u != nil {
			ac.respondWithToken(c, u)
			return
		}
		log.Println("Token login failed: token not found")
	}

	if req.Username == "" || req.Password == "" {
		responses.BadRequest(c, "Username and password are required")
		return
	}

	u, err := ac.repo.GetUserByUsername(req.Username)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if u == nil || !CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid username or password")
		return
	}
	ac.respondWithToken(c, u)
}

func (ac *AuthController) respondWithToken(c *gin.Context, u *User) {
	resp, err := ac.issue(u)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", resp)
}

// @Summary      Register an admin
// @Description  Super admin creates a dashboard admin account.
// @Tags         Admins
// @Accept       json
// @Produce      json
// @Param        admin  body  RegisterAdminRequest  true  "Admin details"
// @Success      201   {object} responses.SuccessResponse{data=UserResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error or user already exists"
// @Failure      403   {object} responses.ErrorResponse "Not a super admin"
// @Router       /admins [post]
// @Security     BearerAuth
func (ac *AuthController) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := ac.repo.GetUserByUsername(req.Username)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if existing != nil {
		responses.BadRequest(c, "User already exists")
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		responses.SendAppError(c, fmt.Errorf("hash password: %w", err))
		return
	}
	u := &User{Name: req.Name, Username: req.Username, Password: hashed, Role: RoleAdmin}
	if err := ac.repo.CreateUser(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.BadRequest(c, "User already exists")
			return
		}
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Admin created successfully", FilterUserRecord(u))
}

// @Summary      List admins
// @Tags         Admins
// @Produce      json
// @Success      200   {object} responses.SuccessResponse{data=[]UserResponse}
// @Router       /admins [get]
// @Security     BearerAuth
func (ac *AuthController) GetAdmins(c *gin.Context) {
	users, err := ac.repo.ListUsersByRole(RoleAdmin)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FilterUserRecord(&users[i]))
	}
	responses.SendSuccess(c, http.StatusOK, "Admins retrieved successfully", out)
}

// @Summary      Delete an admin
// @Tags         Admins
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      200   {object} responses.SuccessResponse
// @Failure      404   {object} responses.ErrorResponse "User not found"
// @Router       /admins/{id} [delete]
// @Security     BearerAuth
func (ac *AuthController) DeleteAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID format")
		return
	}
	if self, _ := middleware.GetUserIDFromContext(c); self == uint(id) {
		responses.BadRequest(c, "You cannot delete your own account")
		return
	}

	u, err := ac.repo.GetUserByID(uint(id))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	if err := ac.repo.DeleteUser(u.ID); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Admin removed", nil)
}
