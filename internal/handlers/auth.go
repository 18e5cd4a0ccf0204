package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/concresys/concresys/internal/models"
	"github.com/concresys/concresys/internal/utils"
	"gorm.io/gorm"
)

// Translated auth errors, keyed off the conditions the original system
// surfaced to its users.
const (
	msgInvalidCredentials = "E-mail ou senha incorretos. Verifique se a conta existe."
	msgEmailInUse         = "Este e-mail já está cadastrado."
	msgWeakPassword       = "A senha deve ter pelo menos 6 caracteres."
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// login handles user login. A successful login refreshes the in-memory
// registry in full; this is the only wholesale reload after startup.
func (r *Router) login(w http.ResponseWriter, req *http.Request) {
	var loginReq LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&loginReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var user models.UserAuth
	if err := r.st.FindUserByEmail(loginReq.Email, &user); err != nil {
		respondError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(loginReq.Password, user.Password) {
		respondError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := r.st.Update(&user); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update session")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&user, r.cfg.JWTSecret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate tokens")
		return
	}

	r.reg.Load()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tokens": map[string]string{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
		"user": user,
	})
}

// register handles sign-up and provisions the user profile row.
func (r *Router) register(w http.ResponseWriter, req *http.Request) {
	var regReq RegisterRequest
	if err := json.NewDecoder(req.Body).Decode(&regReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if regReq.Email == "" {
		respondError(w, http.StatusUnprocessableEntity, msgInvalidCredentials)
		return
	}
	if len(regReq.Password) < 6 {
		respondError(w, http.StatusUnprocessableEntity, msgWeakPassword)
		return
	}

	var existing models.UserAuth
	if err := r.st.FindUserByEmail(regReq.Email, &existing); err == nil {
		respondError(w, http.StatusConflict, msgEmailInUse)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	hashedPassword, err := utils.HashPassword(regReq.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.UserAuth{
		Email:    regReq.Email,
		Password: hashedPassword,
		Name:     regReq.Name,
		Role:     "user",
	}
	if _, err := r.st.Create(&user); err != nil {
		respondError(w, http.StatusConflict, msgEmailInUse)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&user, r.cfg.JWTSecret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "User created but failed to generate tokens")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"tokens": map[string]string{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
		"user": user,
	})
}

// logout handles user logout
func (r *Router) logout(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
