package handlers

import (
	"net/http"
	"net/url"
	"os"

	"pairplay/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthRequest struct {
	InitData string `json:"init_data"`
}

// Auth validates Telegram WebApp init_data and mints a JWT for the caller.
// Pairing itself (who is allowed to play with whom) lives outside this
// service; the token only carries a stable participant identifier.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	// DEV MODE: skip HMAC validation, trust the id embedded in init_data
	if os.Getenv("DEV_MODE") == "true" {
		var userID int64 = 12345
		if values, err := url.ParseQuery(req.InitData); err == nil {
			if id, ok := service.TelegramUserID(values); ok {
				userID = id
			}
		}

		token, err := service.GenerateJWT(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user_id": userID})
		return
	}

	values, ok := service.ValidateTelegramInitData(req.InitData, h.BotToken)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid init data"})
		return
	}

	userID, ok := service.TelegramUserID(values)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user id missing"})
		return
	}

	token, err := service.GenerateJWT(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": userID})
}
