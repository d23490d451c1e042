package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Makena/storefront-api/initializers"
	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type collectionRow struct {
	models.Collection
	ProductsCount int64 `json:"productsCount"`
}

func CreateCollection(ctx *gin.Context) {
	var collection models.Collection
	if err := ctx.ShouldBindJSON(&collection); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&collection).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create collection", err)
		return
	}

	ctx.JSON(http.StatusCreated, collection)
}

func GetCollections(ctx *gin.Context) {
	var collections []models.Collection
	if err := initializers.DB.Order("title").Find(&collections).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch collections", err)
		return
	}

	rows := make([]collectionRow, 0, len(collections))
	for _, collection := range collections {
		var count int64
		initializers.DB.Model(&models.Product{}).Where("collection_id = ?", collection.ID).Count(&count)
		rows = append(rows, collectionRow{Collection: collection, ProductsCount: count})
	}

	ctx.JSON(http.StatusOK, gin.H{"collections": rows})
}

func GetCollection(ctx *gin.Context) {
	collectionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid collection ID", err)
		return
	}

	var collection models.Collection
	if err := initializers.DB.First(&collection, collectionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Collection not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve collection", err)
		}
		return
	}

	var count int64
	initializers.DB.Model(&models.Product{}).Where("collection_id = ?", collection.ID).Count(&count)

	ctx.JSON(http.StatusOK, collectionRow{Collection: collection, ProductsCount: count})
}

func UpdateCollection(ctx *gin.Context) {
	collectionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid collection ID", err)
		return
	}

	var collection models.Collection
	if err := initializers.DB.First(&collection, collectionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Collection not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve collection", err)
		}
		return
	}

	var input models.Collection
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	collection.Title = input.Title
	collection.FeaturedProductID = input.FeaturedProductID

	if err := initializers.DB.Save(&collection).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update collection", err)
		return
	}

	ctx.JSON(http.StatusOK, collection)
}

func DeleteCollection(ctx *gin.Context) {
	collectionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid collection ID", err)
		return
	}

	if err := services.DeleteCollection(initializers.DB, uint(collectionId)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			respondWithError(ctx, http.StatusNotFound, "Collection not found", nil)
		case errors.Is(err, services.ErrCollectionInUse):
			respondWithError(ctx, http.StatusMethodNotAllowed, "Collection cannot be deleted because it is associated with a product.", nil)
		default:
			respondWithError(ctx, http.StatusInternalServerError, "Failed to delete collection", err)
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
