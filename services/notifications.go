package services

import (
	"fmt"
	"time"

	"github.com/Makena/storefront-api/models"
	"github.com/Makena/storefront-api/utils"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// EmailReceiptListener mails an order receipt to the customer's account email.
type EmailReceiptListener struct {
	DB           *gorm.DB
	TemplatePath string
}

func (l *EmailReceiptListener) HandleOrderCreated(event OrderCreated) error {
	var customer models.Customer
	if err := l.DB.First(&customer, event.Order.CustomerID).Error; err != nil {
		return fmt.Errorf("failed to resolve customer %d: %w", event.Order.CustomerID, err)
	}

	var user models.User
	if err := l.DB.First(&user, customer.UserID).Error; err != nil {
		return fmt.Errorf("failed to resolve user %d: %w", customer.UserID, err)
	}

	emailData := utils.EmailData{
		Name:    user.FirstName,
		Message: fmt.Sprintf("Thank you for your order! Order #%d has been placed and is awaiting payment.", event.Order.ID),
		OrderID: event.Order.ID,
		Total:   event.Order.TotalPrice().StringFixed(2),
	}
	return utils.SendEmail(user.Email, fmt.Sprintf("Order #%d confirmation", event.Order.ID), emailData, l.TemplatePath)
}

// WebhookListener POSTs order-created events to an external endpoint.
type WebhookListener struct {
	URL    string
	client *resty.Client
}

func NewWebhookListener(url string) *WebhookListener {
	return &WebhookListener{
		URL:    url,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

func (l *WebhookListener) HandleOrderCreated(event OrderCreated) error {
	resp, err := l.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"event":         "order.created",
			"orderId":       event.Order.ID,
			"customerId":    event.Order.CustomerID,
			"paymentStatus": event.Order.PaymentStatus,
			"total":         event.Order.TotalPrice().StringFixed(2),
		}).
		Post(l.URL)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("order webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
