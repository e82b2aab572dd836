package testutil

import (
	"time"

	"github.com/drigmma/zabugorn/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRequest creates a filled-in request for tests
func NewTestRequest(id, userID int64) *domain.Request {
	return &domain.Request{
		ID:         id,
		UserID:     userID,
		Username:   "@ivanov",
		Name:       "Иванов Иван",
		Phones:     "+79991234567",
		BrandModel: "BMW X5",
		Exterior:   "черный",
		Interior:   "бежевая кожа",
		Package:    "стандарт",
		Budget:     "5-7 млн",
		Year:       "2021",
		Wishes:     "",
		Status:     domain.StatusNew,
		CreatedAt:  time.Now(),
	}
}
