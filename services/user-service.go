package services

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/logging"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/repositories"
	"github.com/carlosjramirezg1979/InProject/utils"
)

// UserService is the identity layer: it mirrors each signed-up user into
// a ProjectManager document and issues session tokens. Provider-internal
// failures are mapped to localized user-facing messages before they
// leave this package.
type UserService struct {
	Repo repositories.Repository
}

func NewUserService(repo repositories.Repository) *UserService {
	return &UserService{Repo: repo}
}

type SignUpRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone,omitempty"`
	Country    string `json:"country"`
	Department string `json:"department"`
	City       string `json:"city"`
}

// SignUp registers a manager: validates the form, hashes the password
// and creates the mirrored ProjectManager document with an empty company
// list.
func (s *UserService) SignUp(ctx context.Context, req SignUpRequest) (*models.ProjectManager, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, apperrors.NewValidation("firstName", "el nombre es obligatorio")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, apperrors.NewValidation("lastName", "el apellido es obligatorio")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.NewValidation("email", "el formato del correo electrónico no es válido")
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewValidation("password", err.Error())
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("sign-up failed: %w", err)
	}

	manager := &models.ProjectManager{
		ID:         uuid.New().String(),
		FirstName:  html.EscapeString(req.FirstName),
		LastName:   html.EscapeString(req.LastName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		Phone:      req.Phone,
		Country:    req.Country,
		Department: req.Department,
		City:       req.City,
		CompanyIDs: []string{},
	}

	if err := s.Repo.CreateManager(ctx, manager); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: MANAGER_REGISTERED, Description: Project manager registered with email %s", manager.Email)
	manager.Password = ""
	return manager, nil
}

// SignIn checks credentials and returns the manager with a session
// token. Both unknown email and bad password come back as the same
// localized message.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*models.ProjectManager, string, error) {
	manager, err := s.Repo.GetManagerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", apperrors.NewAuth("Correo electrónico o contraseña incorrectos.")
	}
	if !utils.CheckPassword(manager.Password, password) {
		return nil, "", apperrors.NewAuth("Correo electrónico o contraseña incorrectos.")
	}

	token, err := utils.GenerateToken(manager.ID, manager.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %v", err)
	}

	manager.Password = ""
	return manager, token, nil
}

// ResetPassword issues a temporary password and mails it out of band.
// The response never reveals whether the email exists.
func (s *UserService) ResetPassword(ctx context.Context, email string) error {
	manager, err := s.Repo.GetManagerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		logging.Logger.Infof("Event ID: PASSWORD_RESET_UNKNOWN_EMAIL, Description: Password reset requested for unknown email")
		return nil
	}

	temporary := utils.GenerateRandomPassword()
	hashed, err := utils.HashPassword(temporary)
	if err != nil {
		return fmt.Errorf("failed to hash temporary password: %v", err)
	}
	if err := s.Repo.UpdateManagerPassword(ctx, manager.ID, hashed); err != nil {
		return err
	}

	subject := "Recuperación de contraseña"
	body := fmt.Sprintf("Tu contraseña temporal es: <b>%s</b>. Cámbiala después de iniciar sesión.", temporary)
	if err := utils.SendEmail(manager.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send password reset email: %v", err)
	}

	logging.Logger.Infof("Event ID: PASSWORD_RESET_SENT, Description: Password reset email sent to manager %s", manager.ID)
	return nil
}

// ChangePassword verifies the old password before storing the new one.
func (s *UserService) ChangePassword(ctx context.Context, managerID, oldPassword, newPassword string) error {
	manager, err := s.Repo.GetManager(ctx, managerID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(manager.Password, oldPassword) {
		return apperrors.NewAuth("La contraseña actual es incorrecta.")
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return apperrors.NewValidation("newPassword", err.Error())
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %v", err)
	}
	return s.Repo.UpdateManagerPassword(ctx, managerID, hashed)
}

func (s *UserService) GetProfile(ctx context.Context, managerID string) (*models.ProjectManager, error) {
	manager, err := s.Repo.GetManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	manager.Password = ""
	return manager, nil
}

// UpdateProfile edits the mutable profile fields. Email and the company
// list are not editable through the profile form.
func (s *UserService) UpdateProfile(ctx context.Context, manager *models.ProjectManager) error {
	if strings.TrimSpace(manager.FirstName) == "" {
		return apperrors.NewValidation("firstName", "el nombre es obligatorio")
	}
	if strings.TrimSpace(manager.LastName) == "" {
		return apperrors.NewValidation("lastName", "el apellido es obligatorio")
	}
	return s.Repo.UpdateManagerProfile(ctx, manager)
}
