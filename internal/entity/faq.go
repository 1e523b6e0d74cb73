package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewFAQ(question, answer string, order int) (*FAQ, error) {
	f := &FAQ{
		ID:        uuid.New().String(),
		Question:  question,
		Answer:    answer,
		Order:     order,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *FAQ) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return errors.New("question is required")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return errors.New("answer is required")
	}
	return nil
}
