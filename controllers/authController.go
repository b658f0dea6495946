package controllers

import (
	"log"
	"net/http"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/Kariqs/shopcart-api/utils"
	"github.com/gin-gonic/gin"
)

const (
	msgAdminCreated = "Admin account created successfully"
	msgUserCreated  = "Account created successfully"
)

func sendAdminWelcomeEmail(user models.User) {
	if initializers.Mailer == nil {
		return
	}

	emailData := utils.EmailData{
		Name:    user.FirstName,
		Message: "An administrator account has been created for you. You can now manage the catalog and orders.",
	}
	if initializers.Config.FrontendURL != "" {
		emailData.LoginURL = initializers.Config.FrontendURL + "/admin/login"
	}
	if err := initializers.Mailer.SendEmail(user.Email, "Your admin account", emailData, "admin_welcome.html"); err != nil {
		log.Println("Error sending admin welcome email:", err)
	} else {
		log.Println("Admin welcome email sent successfully to:", user.Email)
	}
}

// RegisterAdmin handles admin account creation
func RegisterAdmin(ctx *gin.Context) {
	var data models.RegisterData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	user, err := services.RegisterUser(initializers.DB, data, true)
	if err != nil {
		handleServiceError(ctx, err, "Failed to create admin account")
		return
	}

	sendAdminWelcomeEmail(user)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": msgAdminCreated})
}

// AdminLogin issues tokens to staff users only
func AdminLogin(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokens, err := services.AdminLogin(initializers.DB, loginData.Email, loginData.Password, tokenSettings())
	if err != nil {
		handleServiceError(ctx, err, "Failed to generate token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, tokens)
}

// Register handles customer sign up
func Register(ctx *gin.Context) {
	var data models.RegisterData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	user, err := services.RegisterUser(initializers.DB, data, false)
	if err != nil {
		handleServiceError(ctx, err, "Failed to create account")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated, "user": user})
}

// Login handles customer authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokens, err := services.Login(initializers.DB, loginData.Email, loginData.Password, tokenSettings())
	if err != nil {
		handleServiceError(ctx, err, "Failed to generate token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, tokens)
}

func RefreshToken(ctx *gin.Context) {
	var body struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	access, err := services.RefreshAccessToken(initializers.DB, body.Refresh, tokenSettings())
	if err != nil {
		handleServiceError(ctx, err, "Failed to refresh token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"access": access})
}

func GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := services.GetUserDetails(initializers.DB, userID)
	if err != nil {
		handleServiceError(ctx, err, "Unable to retrieve profile")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, user)
}

func UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	user, err := services.UpdateProfile(initializers.DB, userID, update)
	if err != nil {
		handleServiceError(ctx, err, "Unable to update profile")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, user)
}

// UploadProfilePhoto stores a single "photo" file and makes it the caller's profile photo.
func UploadProfilePhoto(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if initializers.Images == nil {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No photo uploaded", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read photo", err)
		return
	}
	defer f.Close()

	url, err := initializers.Images.Upload(
		ctx.Request.Context(),
		utils.ProfilePhotoKey(userID, file.Filename),
		f,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		log.Printf("Error uploading profile photo %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to upload photo")
		return
	}

	user, err := services.SetProfilePhoto(initializers.DB, userID, url)
	if err != nil {
		handleServiceError(ctx, err, "Unable to update profile photo")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, user)
}
