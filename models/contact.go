package models

import "time"

const ContactTypeWhatsApp = "whatsapp"

type ContactInfo struct {
	ID           int64
	Type         string
	Value        string
	IsActive     bool
	DisplayOrder int
}

type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
