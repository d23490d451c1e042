package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Makena/storefront-api/initializers"
	"github.com/Makena/storefront-api/middlewares"
	"github.com/Makena/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func GetCustomers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	var customers []models.Customer
	result := initializers.DB.Preload("Addresses").Limit(limit).Offset(offset).Find(&customers)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch customers")
		return
	}

	var count int64
	initializers.DB.Model(&models.Customer{}).Count(&count)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"customers": customers,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetCustomer(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var customer models.Customer
	if err := initializers.DB.Preload("Addresses").First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Customer not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch customer")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"customer": customer})
}

// GetMe returns the caller's customer profile, creating an empty one on
// first access.
func GetMe(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var customer models.Customer
	if err := initializers.DB.Preload("Addresses").Where(models.Customer{UserID: userId}).FirstOrCreate(&customer).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch customer profile")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"customer": customer})
}

func UpdateMe(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input struct {
		Phone     string          `json:"phone"`
		BirthDate *datatypes.Date `json:"birthDate"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var customer models.Customer
	if err := initializers.DB.Where(models.Customer{UserID: userId}).FirstOrCreate(&customer).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch customer profile")
		return
	}

	customer.Phone = input.Phone
	customer.BirthDate = input.BirthDate

	if err := initializers.DB.Save(&customer).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update customer profile")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"customer": customer})
}

// UpdateMembership lets an admin move a customer between tiers.
func UpdateMembership(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var input struct {
		Membership models.Membership `json:"membership" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	switch input.Membership {
	case models.MembershipBronze, models.MembershipSilver, models.MembershipGold:
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid membership tier")
		return
	}

	result := initializers.DB.Model(&models.Customer{}).Where("id = ?", customerId).Update("membership", input.Membership)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update membership")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Customer not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Membership updated successfully."})
}
