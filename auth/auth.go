package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"blognews-service/model"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const placeholderAvatar = "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2"

// CredentialVerifier is the boundary between the service and whatever
// actually checks credentials. The core never implements a real one.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (model.User, error)
	Register(ctx context.Context, name, email, password string) (model.User, error)
}

// MockVerifier accepts any non-empty credentials after a fixed delay that
// stands in for a network round-trip. The identity it hands back is
// fabricated from the email's local part.
type MockVerifier struct {
	Latency time.Duration
}

func NewMockVerifier(latency time.Duration) *MockVerifier {
	return &MockVerifier{Latency: latency}
}

func (v *MockVerifier) Verify(ctx context.Context, email, password string) (model.User, error) {
	if err := v.wait(ctx); err != nil {
		return model.User{}, err
	}
	if email == "" || password == "" {
		return model.User{}, ErrInvalidCredentials
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	log.Printf("[INFO] Mock login for %s", email)
	return model.User{
		ID:     uuid.NewString(),
		Email:  email,
		Name:   name,
		Avatar: placeholderAvatar,
	}, nil
}

func (v *MockVerifier) Register(ctx context.Context, name, email, password string) (model.User, error) {
	if err := v.wait(ctx); err != nil {
		return model.User{}, err
	}
	if name == "" || email == "" || password == "" {
		return model.User{}, ErrInvalidCredentials
	}

	log.Printf("[INFO] Mock registration for %s", email)
	return model.User{
		ID:     uuid.NewString(),
		Email:  email,
		Name:   name,
		Avatar: placeholderAvatar,
	}, nil
}

func (v *MockVerifier) wait(ctx context.Context) error {
	if v.Latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(v.Latency):
		return nil
	}
}
