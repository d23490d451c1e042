package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Makena/storefront-api/initializers"
	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateTag(ctx *gin.Context) {
	var tag models.Tag
	if err := ctx.ShouldBindJSON(&tag); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&tag).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create tag")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"tag": tag})
}

func GetTags(ctx *gin.Context) {
	var tags []models.Tag
	if err := initializers.DB.Order("label").Find(&tags).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch tags")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"tags": tags})
}

func DeleteTag(ctx *gin.Context) {
	tagId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tagId).Delete(&models.TaggedItem{}).Error; err != nil {
			return err
		}
		// Hard delete so the unique label can be reused by a future tag.
		result := tx.Unscoped().Delete(&models.Tag{}, tagId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Tag not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete tag")
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

type tagItemInput struct {
	EntityKind models.EntityKind `json:"entityKind" binding:"required"`
	EntityID   uint              `json:"entityId" binding:"required"`
}

func AttachTag(ctx *gin.Context) {
	tagId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	var input tagItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, err := services.AttachTag(initializers.DB, uint(tagId), input.EntityKind, input.EntityID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTagNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Tag not found")
		case errors.Is(err, services.ErrInvalidEntityKind):
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown entity kind")
		default:
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to attach tag")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"taggedItem": item})
}

func DetachTag(ctx *gin.Context) {
	tagId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	var input tagItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := services.DetachTag(initializers.DB, uint(tagId), input.EntityKind, input.EntityID); err != nil {
		switch {
		case errors.Is(err, services.ErrTagNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Tag is not attached to this entity")
		case errors.Is(err, services.ErrInvalidEntityKind):
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown entity kind")
		default:
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to detach tag")
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func GetTagsForEntity(ctx *gin.Context) {
	kind := models.EntityKind(ctx.Param("kind"))
	entityId, err := strconv.Atoi(ctx.Param("entityId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid entity ID")
		return
	}

	items, err := services.TagsFor(initializers.DB, kind, uint(entityId))
	if err != nil {
		if errors.Is(err, services.ErrInvalidEntityKind) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown entity kind")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch tags")
		}
		return
	}

	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Tag.Label)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"tags": labels})
}
