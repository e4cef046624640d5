package handlers

import (
	"net/http"
	"werkstatt/auth"
	"werkstatt/services"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Expertise string `json:"expertise"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token services.Token `json:"token"`
}

func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if !h.bind(c, &req) {
		return
	}
	token, err := h.accounts.Register(auth.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Avatar:    req.Avatar,
		Expertise: req.Expertise,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !h.bind(c, &req) {
		return
	}
	token, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (h *Handlers) Me(c *gin.Context) {
	profile, err := h.accounts.Me(auth.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
