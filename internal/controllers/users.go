package controllers

import (
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vorongor/users-api/internal/auth"
	"github.com/Vorongor/users-api/internal/httperr"
	"github.com/Vorongor/users-api/internal/middleware"
	"github.com/Vorongor/users-api/internal/models"
	"github.com/Vorongor/users-api/internal/utils"
	"github.com/Vorongor/users-api/internal/validation"
)

type UserController struct {
	db    *gorm.DB
	email *utils.SMTPClient

	secret   []byte
	tokenTTL time.Duration

	tempDir    string
	avatarsDir string
}

func NewUserController(db *gorm.DB, email *utils.SMTPClient, secret []byte, tokenTTL time.Duration, tempDir, avatarsDir string) *UserController {
	return &UserController{
		db:         db,
		email:      email,
		secret:     secret,
		tokenTTL:   tokenTTL,
		tempDir:    tempDir,
		avatarsDir: avatarsDir,
	}
}

type credentialsPayload struct {
	Email    string `json:"email" binding:"required,email,tld"`
	Password string `json:"password" binding:"required,alphanum,min=7,max=30"`
}

func userProjection(u *models.User) gin.H {
	return gin.H{
		"email":        u.Email,
		"subscription": u.Subscription,
		"avatarURL":    u.AvatarURL,
	}
}

// POST /register
func (uc *UserController) Register(c *gin.Context) {
	var p credentialsPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.Error(httperr.BadRequest(validation.FirstMessage(err)))
		return
	}
	email := strings.ToLower(p.Email)

	var existing models.User
	err := uc.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.Error(httperr.Conflict("Email in use"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(err)
		return
	}

	hash, err := utils.HashPassword(p.Password)
	if err != nil {
		c.Error(err)
		return
	}
	user := models.User{
		Email:             email,
		Password:          hash,
		Subscription:      models.SubscriptionStarter,
		AvatarURL:         utils.GravatarURL(email),
		VerificationToken: uuid.NewString(),
	}
	if err := uc.db.Create(&user).Error; err != nil {
		// the unique index is the backstop behind the existence check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.Error(httperr.Conflict("Email in use"))
			return
		}
		c.Error(err)
		return
	}

	token, err := auth.GenerateToken(user.ID, uc.secret, uc.tokenTTL)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userProjection(&user),
	})
}

// POST /login
func (uc *UserController) Login(c *gin.Context) {
	var p credentialsPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.Error(httperr.BadRequest(validation.FirstMessage(err)))
		return
	}
	email := strings.ToLower(p.Email)

	// one generic failure for unknown email and wrong password alike
	var user models.User
	if err := uc.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.Error(httperr.Unauthorized("Invalid credentials"))
		return
	}
	if err := utils.CheckPasswordHash(user.Password, p.Password); err != nil {
		c.Error(httperr.Unauthorized("Invalid credentials"))
		return
	}

	token, err := auth.GenerateToken(user.ID, uc.secret, uc.tokenTTL)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userProjection(&user),
	})
}

// POST /logout
//
// Tokens are stateless, so nothing is invalidated server-side; the client
// discards its copy. The handler only proves the token still references a
// live account.
func (uc *UserController) Logout(c *gin.Context) {
	tokenStr, ok := middleware.BearerToken(c)
	if !ok {
		c.Error(httperr.Unauthorized("Not authorized"))
		return
	}
	userID, err := auth.ParseToken(tokenStr, uc.secret)
	if err != nil {
		c.Error(httperr.Unauthorized("Token is invalid"))
		return
	}
	var user models.User
	if err := uc.db.First(&user, userID).Error; err != nil {
		c.Error(httperr.Unauthorized("Not authorized"))
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /current
func (uc *UserController) Current(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Error(httperr.Unauthorized("Token is invalid"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": c.GetString(middleware.TokenKey),
		"user":  userProjection(user),
	})
}

type subscriptionPayload struct {
	Subscription string `json:"subscription"`
}

// PATCH /
func (uc *UserController) UpdateSubscription(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Error(httperr.Unauthorized("Not authorized"))
		return
	}
	var p subscriptionPayload
	if err := c.ShouldBindJSON(&p); err != nil || !models.ValidSubscription(p.Subscription) {
		c.Error(httperr.BadRequest("Invalid subscription value"))
		return
	}

	res := uc.db.Model(&models.User{}).Where("id = ?", user.ID).Update("subscription", p.Subscription)
	if res.Error != nil {
		c.Error(res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.Error(httperr.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"code":   http.StatusOK,
		"data": gin.H{
			"email":        user.Email,
			"subscription": p.Subscription,
			"avatarURL":    user.AvatarURL,
		},
	})
}

// PATCH /avatars
//
// The upload lands in the temp dir first and is then moved into the public
// avatars dir under its original filename. Callers are trusted not to
// collide; there is no renaming scheme.
func (uc *UserController) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Error(httperr.Unauthorized("Not authorized"))
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.Error(httperr.BadRequest("avatar file is required"))
		return
	}
	filename := filepath.Base(file.Filename)

	tempPath := filepath.Join(uc.tempDir, filename)
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.Error(err)
		return
	}
	if err := os.Rename(tempPath, filepath.Join(uc.avatarsDir, filename)); err != nil {
		c.Error(err)
		return
	}
	avatarURL := path.Join("avatars", filename)

	res := uc.db.Model(&models.User{}).Where("id = ?", user.ID).Update("avatar_url", avatarURL)
	if res.Error != nil {
		c.Error(res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.Error(httperr.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"code":   http.StatusOK,
		"data": gin.H{
			"email":        user.Email,
			"subscription": user.Subscription,
			"avatarURL":    avatarURL,
		},
	})
}
