package controllers

import (
	"licensing-backend/config"
	"licensing-backend/middleware"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type signInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SignIn verifies the credentials and hands out an access and refresh token
// pair, both as cookies and in the body.
func (ac *AuthController) SignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Debug("Error parsing sign-in body", zap.Error(err))
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	user, err := ac.Service.Authenticate(c.Context(), req.Login, req.Password)
	if err != nil {
		return utils.RespondError(c, err)
	}

	session, err := middleware.IssueSession(c, ac.App, user.ID, user.Login, user.Role.Name)
	if err != nil {
		return utils.RespondError(c, utils.NewInternalError("could not start session", err))
	}

	config.Logger.Info("User signed in", zap.String("login", user.Login), zap.String("client_ip", c.IP()))
	return utils.RespondOK(c, fiber.StatusOK, "Signed in", session)
}
