package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"petplace/config"
	"petplace/internal/domain/repository"
	mockRepo "petplace/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
		Catalog: &config.CatalogConfig{
			BusinessCategories: []string{"restaurant", "veterinary", "park"},
			PetTypes:           []string{"dog", "cat"},
			DefaultPerPage:     20,
			MaxPerPage:         50,
		},
		Review:       &config.ReviewConfig{AutoApprove: true},
		Affiliate:    &config.AffiliateConfig{ShortURLBase: "pet.ly", PublicBaseURL: "https://api.petplace.test", TopDefaultDays: 30},
		Notification: &config.NotificationConfig{DefaultTTL: 30 * 24 * time.Hour},
		Upload:       &config.UploadConfig{MaxSizeBytes: 1 << 20, AllowedMIME: []string{"image/png", "image/jpeg"}},
		Redis:        &config.RedisConfig{CacheTTL: time.Minute},
	}
}

// expectTx makes the next Execute call run fn against a fresh factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		}).
		Once()
}
