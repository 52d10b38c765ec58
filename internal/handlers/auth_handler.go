package handlers

import (
	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/logger"
	"healthreach_backend/internal/middleware"
	"healthreach_backend/internal/services"
	"healthreach_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	maxPhotoSize int64
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, maxPhotoSize int64) *AuthHandler {
	if maxPhotoSize <= 0 {
		maxPhotoSize = 5 * 1024 * 1024
	}
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		maxPhotoSize: maxPhotoSize,
	}
}

// RegisterRoutes registers all authentication routes. The public
// group matches the client's expiry allow-list; a 401 from these
// endpoints never forces a sign-out.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/check-email", h.CheckEmail)
		authGroup.POST("/sign-in", h.SignIn)
		authGroup.POST("/create-account", h.CreateAccount)
		authGroup.POST("/submit-signup-code", h.SubmitSignupCode)
		authGroup.POST("/recover-account", h.RecoverAccount)
		authGroup.POST("/submit-account-recovery-code", h.SubmitRecoveryCode)
		authGroup.POST("/reset-password", h.ResetPassword)

		authGroup.POST("/curator/check-email", h.CuratorCheckEmail)
		authGroup.POST("/curator/sign-in", h.CuratorSignIn)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/add-photo", h.AddPhoto)
		protected.POST("/update-profile", h.UpdateProfile)
		protected.POST("/add-specialty", h.AddSpecialty)
		protected.GET("/profile", h.Profile)
	}
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req dto.CheckEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.CheckEmail(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, message, err := h.authService.SignIn(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKWithMessage(c, resp, message)
}

func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.CreateAccount(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *AuthHandler) SubmitSignupCode(c *gin.Context) {
	var req dto.SubmitSignupCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.SubmitSignupCode(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKWithMessage(c, nil, "Email successfully verified")
}

func (h *AuthHandler) AddPhoto(c *gin.Context) {
	providerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'photo' file field"))
		return
	}
	if file.Size > h.maxPhotoSize {
		apperrors.HandleError(c, apperrors.ErrFileTooLarge)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer src.Close()

	provider, svcErr := h.authService.AddPhoto(providerID, file.Filename, file.Header.Get("Content-Type"), src)
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}
	h.OK(c, provider)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	providerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	provider, err := h.authService.UpdateProfile(providerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, provider)
}

func (h *AuthHandler) AddSpecialty(c *gin.Context) {
	providerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddSpecialtyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	provider, err := h.authService.AddSpecialty(providerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, provider)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	providerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	provider, err := h.authService.Profile(providerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, provider)
}

func (h *AuthHandler) RecoverAccount(c *gin.Context) {
	var req dto.RecoverAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.RecoverAccount(req.Email); err != nil {
		// Do not reveal whether the account exists.
		logger.CtxWarn(c.Request.Context(), "Account recovery failed (hidden from user)",
			"error", err.Error(),
			"email", req.Email,
		)
	}
	h.OKWithMessage(c, nil, "If the email exists, a recovery code has been sent")
}

func (h *AuthHandler) SubmitRecoveryCode(c *gin.Context) {
	var req dto.SubmitRecoveryCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.SubmitRecoveryCode(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKWithMessage(c, nil, "Password successfully reset")
}

func (h *AuthHandler) CuratorCheckEmail(c *gin.Context) {
	var req dto.CheckEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.CuratorCheckEmail(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AuthHandler) CuratorSignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.CuratorSignIn(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}
