package handlers

import (
	"errors"
	"net/http"

	"github.com/jthomsen/motorlot/internal/api/flash"
	"github.com/jthomsen/motorlot/internal/api/middleware"
	"github.com/jthomsen/motorlot/internal/domain"
	"github.com/jthomsen/motorlot/internal/service"
	"github.com/jthomsen/motorlot/internal/view"
)

type AccountHandler struct {
	*Base
	auth         *service.AuthService
	secureCookie bool
}

func NewAccountHandler(base *Base, authService *service.AuthService, secureCookie bool) *AccountHandler {
	return &AccountHandler{Base: base, auth: authService, secureCookie: secureCookie}
}

func (h *AccountHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, view.LoginFormData{})
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, view.LoginFormData{}, "Invalid form submission.")
		return
	}
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if msgs := formErrors(validate.Struct(form)); len(msgs) > 0 {
		h.renderLogin(w, r, http.StatusBadRequest, view.LoginFormData{Email: form.Email}, msgs...)
		return
	}

	_, token, err := h.auth.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same notice for unknown email and wrong password.
			h.renderLogin(w, r, http.StatusBadRequest, view.LoginFormData{Email: form.Email},
				"Please check your credentials and try again.")
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	middleware.SetSessionCookie(w, token, h.auth.Tokens().TTL(), h.secureCookie)
	http.Redirect(w, r, "/account/", http.StatusSeeOther)
}

func (h *AccountHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, http.StatusOK, view.RegisterFormData{})
}

type registerForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required,min=2"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,password"`
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, r, http.StatusBadRequest, view.RegisterFormData{}, "Invalid form submission.")
		return
	}
	form := registerForm{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
	}
	sticky := view.RegisterFormData{FirstName: form.FirstName, LastName: form.LastName, Email: form.Email}
	if msgs := formErrors(validate.Struct(form)); len(msgs) > 0 {
		h.renderRegister(w, r, http.StatusBadRequest, sticky, msgs...)
		return
	}

	account, err := h.auth.Register(r.Context(), service.RegisterInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			h.renderRegister(w, r, http.StatusConflict, sticky,
				"Email exists. Please log in or use a different email.")
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	flash.Notice(w, "Congratulations, you're registered "+account.FirstName+". Please log in.")
	http.Redirect(w, r, "/account/login", http.StatusSeeOther)
}

// ManagementPage is the signed-in landing page.
func (h *AccountHandler) ManagementPage(w http.ResponseWriter, r *http.Request) {
	account, ok := h.currentAccount(w, r)
	if !ok {
		return
	}
	content, err := h.Renderer.AccountManagement(account)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, http.StatusOK, "Account Management", content)
}

func (h *AccountHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	account, ok := h.currentAccount(w, r)
	if !ok {
		return
	}
	content, err := h.Renderer.UpdateForms(account)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, http.StatusOK, "Update Account", content)
}

type updateProfileForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required,min=2"`
	Email     string `validate:"required,email"`
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderUpdate(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}
	form := updateProfileForm{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
	}
	if msgs := formErrors(validate.Struct(form)); len(msgs) > 0 {
		h.renderUpdate(w, r, http.StatusBadRequest, msgs...)
		return
	}

	_, token, err := h.auth.UpdateProfile(r.Context(), claims.AccountID, service.UpdateProfileInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			h.renderUpdate(w, r, http.StatusConflict, "Email exists. Please use a different email.")
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	// Identity changed: overwrite the cookie with fresh claims.
	middleware.SetSessionCookie(w, token, h.auth.Tokens().TTL(), h.secureCookie)
	flash.Notice(w, "Account information updated.")
	http.Redirect(w, r, "/account/", http.StatusSeeOther)
}

type changePasswordForm struct {
	Password string `validate:"required,password"`
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderUpdate(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}
	form := changePasswordForm{Password: r.PostFormValue("password")}
	if msgs := formErrors(validate.Struct(form)); len(msgs) > 0 {
		h.renderUpdate(w, r, http.StatusBadRequest, msgs...)
		return
	}

	_, token, err := h.auth.ChangePassword(r.Context(), claims.AccountID, form.Password)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}

	middleware.SetSessionCookie(w, token, h.auth.Tokens().TTL(), h.secureCookie)
	flash.Notice(w, "Password changed.")
	http.Redirect(w, r, "/account/", http.StatusSeeOther)
}

// Logout clears the session cookie. Tokens are stateless, so this is
// the whole operation.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	flash.Notice(w, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AccountHandler) currentAccount(w http.ResponseWriter, r *http.Request) (*domain.Account, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return nil, false
	}
	account, err := h.auth.Account(r.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			middleware.ClearSessionCookie(w)
			http.Redirect(w, r, "/account/login", http.StatusSeeOther)
			return nil, false
		}
		h.RenderServerError(w, r, err)
		return nil, false
	}
	return account, true
}

func (h *AccountHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, data view.LoginFormData, errs ...string) {
	content, err := h.Renderer.LoginForm(data)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, status, "Login", content, errs...)
}

func (h *AccountHandler) renderRegister(w http.ResponseWriter, r *http.Request, status int, data view.RegisterFormData, errs ...string) {
	content, err := h.Renderer.RegisterForm(data)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, status, "Register", content, errs...)
}

func (h *AccountHandler) renderUpdate(w http.ResponseWriter, r *http.Request, status int, errs ...string) {
	account, ok := h.currentAccount(w, r)
	if !ok {
		return
	}
	content, err := h.Renderer.UpdateForms(account)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, status, "Update Account", content, errs...)
}
