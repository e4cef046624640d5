package handlers_test

import (
	"net/http"
	"testing"
	"werkstatt/auth"
	"werkstatt/errors"
	"werkstatt/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	body := map[string]string{"email": "anna@example.de", "password": "Sicher!Passwort1", "name": "Anna"}

	t.Run("created", func(t *testing.T) {
		req := require.New(t)
		a := newAPI(t)
		a.accounts.EXPECT().Register(auth.RegisterRequest{
			Email: "anna@example.de", Password: "Sicher!Passwort1", Name: "Anna",
		}).Return(services.Token("jwt"), nil)

		w := a.do(t, http.MethodPost, "/api/auth/register", body, "")

		req.Equal(http.StatusCreated, w.Code)
		req.JSONEq(`{"token":"jwt"}`, w.Body.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		a := newAPI(t)
		a.accounts.EXPECT().Register(gomock.Any()).Return(services.Token(""), errors.ErrUserAlreadyExists)
		w := a.do(t, http.MethodPost, "/api/auth/register", body, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		a := newAPI(t)
		a.accounts.EXPECT().Register(gomock.Any()).Return(services.Token(""), errors.ErrInvalidPassword)
		w := a.do(t, http.MethodPost, "/api/auth/register", body, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	req := require.New(t)
	a := newAPI(t)

	a.accounts.EXPECT().Login("anna@example.de", "falsch").Return(services.Token(""), errors.ErrInvalidCredentials)
	w := a.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "anna@example.de", "password": "falsch"}, "")
	req.Equal(http.StatusUnauthorized, w.Code)
	req.JSONEq(`{"error":"invalid credentials"}`, w.Body.String())
}

func TestMe(t *testing.T) {
	req := require.New(t)
	a := newAPI(t)
	a.accounts.EXPECT().Me("u1").Return(services.Profile{ID: "u1", Name: "Anna"}, nil)

	w := a.do(t, http.MethodGet, "/api/me", nil, "u1")

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), `"name":"Anna"`)
}
