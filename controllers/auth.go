package controllers

import (
	"net/http"

	"washwear-backend/config"
	"washwear-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the operator against the env-configured
// credentials and issues a JWT. A bcrypt hash is preferred when set;
// ADMIN_PASSWORD is the plaintext fallback for local setups.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cfg := config.App
	if input.Username != cfg.AdminUsername {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var ok bool
	switch {
	case cfg.AdminPasswordHash != "":
		ok = utils.CheckPasswordHash(input.Password, cfg.AdminPasswordHash)
	case cfg.AdminPassword != "":
		ok = input.Password == cfg.AdminPassword
	}
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(input.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"username": input.Username},
	})
}

func Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Username not found in context")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"username": username}})
}
