package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/purebliss/purebliss-api/initializers"
	"github.com/purebliss/purebliss-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Dessert handlers
func CreateDessert(ctx *gin.Context) {
	var dessert models.Dessert
	if err := ctx.ShouldBindJSON(&dessert); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&dessert).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create dessert", err)
		return
	}

	ctx.JSON(http.StatusCreated, dessert)
}

func GetDesserts(ctx *gin.Context) {
	var desserts []models.Dessert

	// Add pagination
	page, limit, offset := parsePagination(ctx, 12)

	query := initializers.DB.Order("created_at desc")

	// Add search by name if provided
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if ctx.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	result := query.Limit(limit).Offset(offset).Find(&desserts)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch desserts", result.Error)
		return
	}

	// Get total count for pagination
	var count int64
	initializers.DB.Model(&models.Dessert{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"desserts": desserts,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetDessert(ctx *gin.Context) {
	dessertId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid dessert ID", err)
		return
	}

	var dessert models.Dessert
	result := initializers.DB.First(&dessert, dessertId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Dessert not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve dessert", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, dessert)
}

// UpdateDessert overwrites a dessert's editable fields. Last write wins; there
// is no versioning on the catalog.
func UpdateDessert(ctx *gin.Context) {
	dessertId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid dessert ID", err)
		return
	}

	var dessert models.Dessert
	if result := initializers.DB.First(&dessert, dessertId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Dessert not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve dessert", result.Error)
		}
		return
	}

	var updates models.Dessert
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dessert.Name = updates.Name
	dessert.Description = updates.Description
	dessert.PackOf = updates.PackOf
	dessert.PriceCents = updates.PriceCents
	dessert.Ingredients = updates.Ingredients
	dessert.Tags = updates.Tags
	dessert.ImageURL = updates.ImageURL
	dessert.InStock = updates.InStock
	dessert.IsFeatured = updates.IsFeatured

	if err := initializers.DB.Save(&dessert).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update dessert", err)
		return
	}

	ctx.JSON(http.StatusOK, dessert)
}

func DeleteDessert(ctx *gin.Context) {
	dessertId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid dessert ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Dessert{}, dessertId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete dessert", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Dessert deleted successfully."})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadDessertImage stores a dessert photo in S3 and saves its public URL on
// the dessert record.
func UploadDessertImage(ctx *gin.Context) {
	dessertId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid dessert ID", err)
		return
	}

	var dessert models.Dessert
	if err := initializers.DB.First(&dessert, dessertId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Dessert not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate dessert", err)
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	defer f.Close()

	// Generate a unique filename to prevent overwrites
	uniqueFilename := fmt.Sprintf("%d-%s-%s", dessertId, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String("purebliss-desserts"),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	if err := initializers.DB.Model(&dessert).Update("image_url", result.Location).Error; err != nil {
		log.Printf("Image uploaded but URL not saved for dessert %d: %v", dessertId, err)
		respondWithError(ctx, http.StatusInternalServerError, "Image uploaded but not saved", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded",
		"url":     result.Location,
	})
}
