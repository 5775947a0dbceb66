package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopnest/api/models"
	"github.com/shopnest/api/store"
	"github.com/shopnest/api/utils"
)

const (
	// Standard response messages
	msgInvalidInput       = "Invalid input"
	msgUserAlreadyExists  = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgServerError        = "Server error"
	msgUnauthorized       = "Unauthorized"
	msgProductNotFound    = "Product not found"
	msgCartNotFound       = "Cart not found"
	msgItemNotFound       = "Item not found in cart"
	msgWishlistNotFound   = "Wishlist not found"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates the user, provisions an empty cart and wishlist for them
// and returns a signed token. Cart and wishlist creation happens in-process
// against the store; if it fails the user still exists and the aggregates
// are created lazily on first access.
func Register(st store.Store, jwtSecret string, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input registerInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			log.Errorw("hashing password", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		user := models.User{
			Username: input.Username,
			Email:    input.Email,
			Password: hashedPassword,
		}
		if err := st.CreateUser(ctx.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
				return
			}
			log.Errorw("creating user", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		if _, err := fetchOrCreateCart(ctx.Request.Context(), st, user.ID); err != nil {
			log.Errorw("provisioning cart", "userId", user.ID, "error", err)
		}
		if _, err := fetchOrCreateWishlist(ctx.Request.Context(), st, user.ID); err != nil {
			log.Errorw("provisioning wishlist", "userId", user.ID, "error", err)
		}

		token, err := utils.GenerateToken(user.ID, jwtSecret)
		if err != nil {
			log.Errorw("generating token", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{"token": token, "userId": user.ID})
	}
}

// Login verifies the credentials and returns the same token shape as Register.
// Unknown email and wrong password produce the same message.
func Login(users store.UserStore, jwtSecret string, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input loginInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := users.UserByEmail(ctx.Request.Context(), input.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
				return
			}
			log.Errorw("fetching user", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		if err := utils.ComparePasswords(user.Password, input.Password); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}

		token, err := utils.GenerateToken(user.ID, jwtSecret)
		if err != nil {
			log.Errorw("generating token", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token, "userId": user.ID})
	}
}
