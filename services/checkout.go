package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cafe-order/cart"
	"cafe-order/models"

	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingName         = errors.New("customer name is required")
	ErrMissingAddress      = errors.New("delivery address is required")
	ErrNoContactConfigured = errors.New("no active whatsapp contact configured")
)

type CheckoutInput struct {
	Lines        []cart.Line
	CustomerName string
	TableNumber  string
	OrderType    string
	Address      string
}

type CheckoutResult struct {
	OrderID     int64
	WhatsAppURL string // set only for delivery orders
}

// SubmitCheckout validates the submission, persists the order with its
// line items, and for delivery builds the WhatsApp handoff link. All
// validation, including the contact lookup, happens before anything is
// written; a persistence failure never produces a link.
func SubmitCheckout(ctx context.Context, waHost, countryCode string, in CheckoutInput) (*CheckoutResult, error) {
	if len(in.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, ErrMissingName
	}
	address := strings.TrimSpace(in.Address)
	delivery := in.OrderType == models.OrderTypeDelivery
	if delivery && address == "" {
		return nil, ErrMissingAddress
	}

	var phone string
	if delivery {
		raw, ok := ResolveWhatsAppNumber(ctx)
		if !ok {
			return nil, ErrNoContactConfigured
		}
		phone = NormalizePhone(raw, countryCode)
	}

	var total int64
	items := make([]models.OrderItemInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		total += l.Subtotal()
		items = append(items, models.OrderItemInput{
			MenuID:   l.Item.ID,
			Quantity: l.Qty,
			Price:    l.Item.Price,
			Subtotal: l.Subtotal(),
		})
	}

	orderType := models.OrderTypeDineIn
	if delivery {
		orderType = models.OrderTypeDelivery
	}
	orderID, err := CreateOrder(ctx, models.CreateOrderInput{
		CustomerName:    name,
		TableNumber:     strings.TrimSpace(in.TableNumber),
		TotalAmount:     total,
		OrderType:       orderType,
		DeliveryAddress: address,
		Items:           items,
	})
	if err != nil {
		log.Error().Err(err).Str("order_type", orderType).Msg("order persistence failed")
		return nil, fmt.Errorf("create order: %w", err)
	}

	result := &CheckoutResult{OrderID: orderID}
	if delivery {
		msg := BuildOrderMessage(name, address, in.Lines, total)
		result.WhatsAppURL = BuildWhatsAppURL(waHost, phone, msg)
	}
	return result, nil
}
