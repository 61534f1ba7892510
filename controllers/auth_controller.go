package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/AmoolyaSuneja/EduStream/config"
	"github.com/AmoolyaSuneja/EduStream/middleware"
	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/users"
	"github.com/AmoolyaSuneja/EduStream/utils"
)

type AuthController struct {
	Users *users.Service
	Cfg   *config.Config
}

func NewAuthController(users *users.Service, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input credentials
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Users.Register(c.Context(), input.Name, input.Email, input.Password)
	if errors.Is(err, users.ErrMissingFields) {
		return utils.BadRequest(c, "Name, email and password are required")
	}
	if errors.Is(err, users.ErrEmailTaken) {
		return utils.Error(c, fiber.StatusConflict, err)
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	return ac.respondWithToken(c, user)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input credentials
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Users.Login(c.Context(), input.Email, input.Password)
	if errors.Is(err, users.ErrMissingFields) {
		return utils.BadRequest(c, "Email and password are required")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not log in")
	}

	return ac.respondWithToken(c, user)
}

func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	user, err := ac.Users.Get(c.Context(), middleware.UserID(c))
	if errors.Is(err, users.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not load profile")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	var updates models.User
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Users.Update(c.Context(), middleware.UserID(c), updates)
	if errors.Is(err, users.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (ac *AuthController) respondWithToken(c *fiber.Ctx, user models.User) error {
	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
