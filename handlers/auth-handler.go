package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/carlosjramirezg1979/InProject/middleware"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/services"
)

type AuthHandler struct {
	UserService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token   string                 `json:"token"`
	Manager *models.ProjectManager `json:"manager"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req services.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	manager, err := h.UserService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, manager)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	manager, token, err := h.UserService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SignInResponse{Token: token, Manager: manager})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	if err := h.UserService.ResetPassword(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	// Same answer whether or not the email exists.
	writeJSON(w, http.StatusOK, map[string]string{"message": "Si el correo existe, recibirás una contraseña temporal."})
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), managerID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contraseña actualizada."})
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())

	manager, err := h.UserService.GetProfile(r.Context(), managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, manager)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())

	var manager models.ProjectManager
	if err := json.NewDecoder(r.Body).Decode(&manager); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	manager.ID = managerID

	if err := h.UserService.UpdateProfile(r.Context(), &manager); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Perfil actualizado."})
}
