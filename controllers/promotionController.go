package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Makena/storefront-api/initializers"
	"github.com/Makena/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreatePromotion(ctx *gin.Context) {
	var promotion models.Promotion
	if err := ctx.ShouldBindJSON(&promotion); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&promotion).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create promotion", err)
		return
	}

	ctx.JSON(http.StatusCreated, promotion)
}

func GetPromotions(ctx *gin.Context) {
	var promotions []models.Promotion
	if err := initializers.DB.Order("discount desc").Find(&promotions).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promotions", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"promotions": promotions})
}

// AttachPromotion links an existing promotion to a product.
func AttachPromotion(ctx *gin.Context) {
	promotionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid promotion ID", err)
		return
	}

	var input struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var promotion models.Promotion
	if err := initializers.DB.First(&promotion, promotionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Promotion not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve promotion", err)
		}
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	if err := initializers.DB.Model(&product).Association("Promotions").Append(&promotion); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to attach promotion", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promotion attached to product."})
}

func DeletePromotion(ctx *gin.Context) {
	promotionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid promotion ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Promotion{}, promotionId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete promotion", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Promotion not found", nil)
		return
	}

	ctx.Status(http.StatusNoContent)
}
