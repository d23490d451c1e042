package services

import (
	"log"

	"github.com/Makena/storefront-api/models"
)

type OrderCreated struct {
	Order *models.Order
}

// OrderListener receives order-created events after the checkout
// transaction has committed. Delivery is best effort: errors and panics
// are logged and never reach the checkout caller.
type OrderListener interface {
	HandleOrderCreated(event OrderCreated) error
}

func dispatchOrderCreated(listeners []OrderListener, order *models.Order) {
	for _, listener := range listeners {
		notifyListener(listener, OrderCreated{Order: order})
	}
}

func notifyListener(listener OrderListener, event OrderCreated) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("order created listener panicked: %v", r)
		}
	}()
	if err := listener.HandleOrderCreated(event); err != nil {
		log.Printf("order created listener failed: %v", err)
	}
}
