package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pardomauro/goblog/config"
	"github.com/pardomauro/goblog/models"
	"github.com/pardomauro/goblog/utils"
)

// minPasswordLen applies at registration and on every password change.
const minPasswordLen = 6

// emailPattern requires local@domain with at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// loginDummyHash is compared on the unknown-email branch so both login
// failure causes cost a bcrypt verification; otherwise response latency
// would reveal which emails are registered.
var loginDummyHash, _ = utils.HashPassword("timing-equalizer")

// UsuarioController handles registration, login and administrative user CRUD.
type UsuarioController struct {
	db *gorm.DB
}

// NewUsuarioController creates a UsuarioController.
func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{db: db}
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type credencialesRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registro registers a local account. The password is stored only as a
// bcrypt hash and the response carries a signed session token alongside
// the user's public fields.
func (u *UsuarioController) Registro(ctx *gin.Context) {
	var req credencialesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	nombre := utils.Sanitize(strings.TrimSpace(req.Nombre))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if nombre == "" || email == "" || req.Password == "" {
		utils.Fail(ctx, http.StatusBadRequest, "Todos los campos son obligatorios")
		return
	}
	if !validEmail(email) {
		utils.Fail(ctx, http.StatusBadRequest, "El formato del email no es válido")
		return
	}
	if len(req.Password) < minPasswordLen {
		utils.Fail(ctx, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}

	var existing models.Usuario
	if err := u.db.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.Fail(ctx, http.StatusBadRequest, "El usuario ya existe con este email")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Sugar.Errorf("failed to hash password: %v", err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	usuario := models.Usuario{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.db.Create(&usuario).Error; err != nil {
		utils.Sugar.Errorf("failed to create user: %v", err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	token, err := utils.GenerateToken(usuario.ID, usuario.Email, tokenTTL())
	if err != nil {
		utils.Sugar.Errorf("failed to generate token: %v", err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.Created(ctx, gin.H{
		"message": "Usuario registrado exitosamente",
		"user":    usuario,
		"token":   token,
	})
}

// Login verifies credentials and issues a signed session token. An unknown
// email and a wrong password produce the same generic 401 so the response
// never reveals which emails are registered.
func (u *UsuarioController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		utils.Fail(ctx, http.StatusBadRequest, "Email y contraseña son obligatorios")
		return
	}

	var usuario models.Usuario
	if err := u.db.Where("email = ?", email).First(&usuario).Error; err != nil {
		utils.CheckPassword(loginDummyHash, req.Password)
		utils.Fail(ctx, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}
	if !utils.CheckPassword(usuario.PasswordHash, req.Password) {
		utils.Fail(ctx, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, err := utils.GenerateToken(usuario.ID, usuario.Email, tokenTTL())
	if err != nil {
		utils.Sugar.Errorf("failed to generate token: %v", err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.Success(ctx, gin.H{
		"message": "Login exitoso",
		"user":    usuario,
		"token":   token,
	})
}

// ListUsuarios returns all users' public fields, newest first.
func (u *UsuarioController) ListUsuarios(ctx *gin.Context) {
	var usuarios []models.Usuario
	if err := u.db.Order("created_at DESC").Find(&usuarios).Error; err != nil {
		utils.Sugar.Errorf("failed to list users: %v", err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	utils.Success(ctx, gin.H{"usuarios": usuarios})
}

// GetUsuario returns one user's public fields.
func (u *UsuarioController) GetUsuario(ctx *gin.Context) {
	id := ctx.Param("id")

	var usuario models.Usuario
	if err := u.db.First(&usuario, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		utils.Sugar.Errorf("failed to load user %s: %v", id, err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.Success(ctx, gin.H{"usuario": usuario})
}

// CreateUsuario is the administrative variant of registration: same
// validation, no session token issued.
func (u *UsuarioController) CreateUsuario(ctx *gin.Context) {
	var req credencialesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	nombre := utils.Sanitize(strings.TrimSpace(req.Nombre))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if nombre == "" || email == "" || req.Password == "" {
		utils.Fail(ctx, http.StatusBadRequest, "Faltan campos obligatorios: nombre, email y password son requeridos")
		return
	}
	if !validEmail(email) {
		utils.Fail(ctx, http.StatusBadRequest, "El formato del email no es válido")
		return
	}
	if len(req.Password) < minPasswordLen {
		utils.Fail(ctx, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}

	var existing models.Usuario
	if err := u.db.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.Fail(ctx, http.StatusBadRequest, "Este email ya está registrado")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Sugar.Errorf("failed to hash password: %v", err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	usuario := models.Usuario{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.db.Create(&usuario).Error; err != nil {
		utils.Sugar.Errorf("failed to create user: %v", err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.Created(ctx, gin.H{
		"message": "Usuario creado exitosamente",
		"usuario": usuario,
	})
}

// UpdateUsuario updates a user. Nombre and email are mandatory on every
// call; the password is optional and re-hashed when supplied.
func (u *UsuarioController) UpdateUsuario(ctx *gin.Context) {
	id := ctx.Param("id")

	var usuario models.Usuario
	if err := u.db.First(&usuario, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Fail(ctx, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		utils.Sugar.Errorf("failed to load user %s: %v", id, err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	var req credencialesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	nombre := utils.Sanitize(strings.TrimSpace(req.Nombre))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if nombre == "" || email == "" {
		utils.Fail(ctx, http.StatusBadRequest, "Nombre y email son requeridos")
		return
	}
	if !validEmail(email) {
		utils.Fail(ctx, http.StatusBadRequest, "El formato del email no es válido")
		return
	}

	// Uniqueness check excludes the user's own row.
	var existing models.Usuario
	if err := u.db.Where("email = ? AND id <> ?", email, usuario.ID).First(&existing).Error; err == nil {
		utils.Fail(ctx, http.StatusBadRequest, "Este email ya está registrado por otro usuario")
		return
	}

	usuario.Nombre = nombre
	usuario.Email = email

	if req.Password != "" {
		if len(req.Password) < minPasswordLen {
			utils.Fail(ctx, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			utils.Sugar.Errorf("failed to hash password: %v", err)
			utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		usuario.PasswordHash = hash
	}

	if err := u.db.Save(&usuario).Error; err != nil {
		utils.Sugar.Errorf("failed to update user %s: %v", id, err)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.Success(ctx, gin.H{
		"message": "Usuario actualizado exitosamente",
		"usuario": usuario,
	})
}

// DeleteUsuario removes a user.
func (u *UsuarioController) DeleteUsuario(ctx *gin.Context) {
	id := ctx.Param("id")

	res := u.db.Delete(&models.Usuario{}, "id = ?", id)
	if res.Error != nil {
		utils.Sugar.Errorf("failed to delete user %s: %v", id, res.Error)
		utils.Fail(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if res.RowsAffected == 0 {
		utils.Fail(ctx, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	utils.Success(ctx, gin.H{"message": "Usuario eliminado"})
}

func tokenTTL() time.Duration {
	return time.Duration(config.Get().TokenTTLHours) * time.Hour
}
