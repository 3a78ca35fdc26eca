package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dharti/models"
	"dharti/storage"
)

// ContactService validates and records contact-form submissions. There
// is no backend to deliver to; submissions are kept locally so the
// inquiry history survives restarts.
type ContactService struct {
	store *storage.SQLiteStore
}

func NewContactService(store *storage.SQLiteStore) *ContactService {
	return &ContactService{store: store}
}

// Submit checks the required fields and stores the message. The phone
// field is optional.
func (s *ContactService) Submit(name, email, phone, message string) (*models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	m := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(phone),
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.store.InsertContactMessage(m); err != nil {
		return nil, fmt.Errorf("record contact message: %w", err)
	}
	return m, nil
}

// Recent returns the latest recorded inquiries, newest first.
func (s *ContactService) Recent(limit int) ([]models.ContactMessage, error) {
	return s.store.GetContactMessages(limit)
}
