package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Makena/storefront-api/initializers"
	"github.com/Makena/storefront-api/middlewares"
	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var checkoutService *services.CheckoutService

// RegisterCheckoutService wires the checkout service (with its listeners)
// into the order handlers. Called once from main.
func RegisterCheckoutService(svc *services.CheckoutService) {
	checkoutService = svc
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusComplete):
		return models.PaymentStatusComplete, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func orderJSON(order *models.Order) gin.H {
	productIDs := make([]uint, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	titles := map[uint]string{}
	if len(productIDs) > 0 {
		var products []models.Product
		if err := initializers.DB.Select("id", "title").Find(&products, productIDs).Error; err == nil {
			for _, product := range products {
				titles[product.ID] = product.Title
			}
		}
	}

	items := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, gin.H{
			"id":         item.ID,
			"productId":  item.ProductID,
			"title":      titles[item.ProductID],
			"quantity":   item.Quantity,
			"unitPrice":  item.UnitPrice,
			"totalPrice": item.TotalPrice(),
		})
	}

	return gin.H{
		"id":            order.ID,
		"customerId":    order.CustomerID,
		"placedAt":      order.CreatedAt,
		"paymentStatus": order.PaymentStatus,
		"items":         items,
		"totalPrice":    order.TotalPrice(),
	}
}

// CreateOrder turns the caller's cart into an order.
func CreateOrder(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input struct {
		CartID string `json:"cartId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	order, err := checkoutService.Checkout(input.CartID, userId)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "No cart with given id was found!")
		case errors.Is(err, services.ErrEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, "The cart is empty!")
		case errors.Is(err, services.ErrProductConflict):
			sendErrorResponse(ctx, http.StatusConflict, "A product in the cart no longer exists.")
		default:
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, orderJSON(order))
}

// GetOrders returns all orders for admins, the caller's own otherwise.
func GetOrders(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items")
	countQuery := initializers.DB.Model(&models.Order{})

	if !middlewares.IsAdmin(ctx) {
		var customer models.Customer
		if err := initializers.DB.Where("user_id = ?", userId).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": []gin.H{}})
				return
			}
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
			return
		}
		query = query.Where("customer_id = ?", customer.ID)
		countQuery = countQuery.Where("customer_id = ?", customer.ID)
	} else if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ?", "%"+search+"%")
		countQuery = countQuery.Where("id LIKE ?", "%"+search+"%")
	}

	var orders []models.Order
	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	var count int64
	countQuery.Count(&count)

	rows := make([]gin.H, 0, len(orders))
	for i := range orders {
		rows = append(rows, orderJSON(&orders[i]))
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": rows,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrderById(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	if !middlewares.IsAdmin(ctx) {
		var customer models.Customer
		if err := initializers.DB.Where("user_id = ?", userId).First(&customer).Error; err != nil || customer.ID != order.CustomerID {
			sendErrorResponse(ctx, http.StatusForbidden, "You do not have access to this order")
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, orderJSON(&order))
}

func UpdatePaymentStatus(ctx *gin.Context) {
	var input struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	status, err := mapPaymentStatus(input.PaymentStatus)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	result := initializers.DB.Model(&models.Order{}).Where("id = ?", orderId).Update("payment_status", status)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update payment status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment status updated successfully."})
}

func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderId).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, orderId)
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
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
