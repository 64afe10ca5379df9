package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cafe-order/db"
	"cafe-order/models"

	"github.com/rs/zerolog/log"
)

// ResolveWhatsAppNumber returns the active WhatsApp destination with the
// lowest display order. Query failure and absence look the same to the
// caller: both mean no contact is configured.
func ResolveWhatsAppNumber(ctx context.Context) (string, bool) {
	var value string
	err := db.Pool.QueryRow(ctx, `
		SELECT value FROM contact_info
		WHERE type = $1 AND is_active = true
		ORDER BY display_order
		LIMIT 1`,
		models.ContactTypeWhatsApp,
	).Scan(&value)
	if err != nil {
		log.Warn().Err(err).Msg("whatsapp contact lookup failed")
		return "", false
	}
	return value, true
}

// SaveContactMessage stores one landing-page contact form submission.
func SaveContactMessage(ctx context.Context, name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("name, email and message are required")
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)`,
		name, email, message, time.Now().UTC(),
	)
	return err
}
