package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/garageworks/garage-service/internal/api/metrics"
	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignInCustomer authenticates a customer.
//
// @Summary      Customer sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  map[string]string
// @Router       /signin [post]
func (h *AuthHandler) SignInCustomer(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.authService.SignInCustomer(c.Request().Context(), req.UserName, req.Password)
	metrics.ObserveSignIn(domain.RoleCustomer, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signInResponse{Message: "ok", LicenseNumber: res.LicenseNumber, Token: res.Token})
}

// SignInWorker authenticates a worker.
//
// @Summary      Worker sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  map[string]string
// @Router       /signin/worker [post]
func (h *AuthHandler) SignInWorker(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.authService.SignInWorker(c.Request().Context(), req.UserName, req.Password)
	metrics.ObserveSignIn(domain.RoleWorker, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signInResponse{Message: "ok", WorkerName: res.WorkerName, Token: res.Token})
}

// SignUpCustomer registers a customer account.
//
// @Summary      Customer sign-up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpCustomerRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /signup/customer [post]
func (h *AuthHandler) SignUpCustomer(c echo.Context) error {
	var req signUpCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.authService.SignUpCustomer(c.Request().Context(), ports.SignUpCustomerInput{
		UserName:      req.UserName,
		Email:         req.Email,
		Password:      req.Password,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		return err
	}
	metrics.SignUpsTotal.WithLabelValues(domain.RoleCustomer).Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Customer sign-up successful!"})
}

// SignUpWorker registers a worker account.
//
// @Summary      Worker sign-up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpWorkerRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /signup/worker [post]
func (h *AuthHandler) SignUpWorker(c echo.Context) error {
	var req signUpWorkerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.authService.SignUpWorker(c.Request().Context(), ports.SignUpWorkerInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.SignUpsTotal.WithLabelValues(domain.RoleWorker).Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Worker sign-up successful!"})
}
