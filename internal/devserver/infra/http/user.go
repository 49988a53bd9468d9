package http

import (
	"net/http"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/service"
	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
	pkgauth "github.com/klwxsrx/hwstore-client/pkg/auth"
	pkghttp "github.com/klwxsrx/hwstore-client/pkg/http"
)

const authorizationHeader = "Authorization"

type LoginHandler struct {
	authService service.Authentication
}

func NewLoginHandler(authService service.Authentication) LoginHandler {
	return LoginHandler{authService: authService}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/user/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginIn](), nil)
	if err != nil {
		return err
	}

	result, err := h.authService.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		return err
	}

	w.SetHeader(authorizationHeader, "Bearer "+string(result.Token))
	w.SetJSONBody(toUserOut(result.User))
	return nil
}

type CurrentUserHandler struct {
	userRepo domain.UserRepository
}

func NewCurrentUserHandler(userRepo domain.UserRepository) CurrentUserHandler {
	return CurrentUserHandler{userRepo: userRepo}
}

func (h CurrentUserHandler) Method() string {
	return http.MethodGet
}

func (h CurrentUserHandler) Path() string {
	return "/user/current"
}

func (h CurrentUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.MustGetPrincipal[service.Principal](r.Context())
	if err != nil {
		return err
	}

	user, err := h.userRepo.FindByID(principal.UserID)
	if err != nil {
		return err
	}

	w.SetJSONBody(toUserOut(user))
	return nil
}

type LogoutHandler struct {
	authService service.Authentication
}

func NewLogoutHandler(authService service.Authentication) LogoutHandler {
	return LogoutHandler{authService: authService}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return "/user/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.MustGetPrincipal[service.Principal](r.Context())
	if err != nil {
		return err
	}

	h.authService.Logout(r.Context(), principal)
	w.SetStatusCode(http.StatusNoContent)
	return nil
}
