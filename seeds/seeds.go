package seeds

import (
	"context"
	"fmt"
	"time"

	"licensing-backend/config"
	contractServices "licensing-backend/contracts/services"
	"licensing-backend/db"
	softwareServices "licensing-backend/softwares/services"
	userServices "licensing-backend/users/services"
	"licensing-backend/utils"

	"go.uber.org/zap"
)

type Seeder struct {
	Auth      *userServices.AuthService
	Softwares *softwareServices.SoftwareService
	Discounts *contractServices.DiscountService
	Now       func() time.Time
}

type AdminAccount struct {
	Login    string
	Password string
	Email    string
}

// SeedLicensingAll is safe to run on every start.
func (s *Seeder) SeedLicensingAll(ctx context.Context, admin AdminAccount) error {
	config.Logger.Info("Starting database seeding...")

	if err := s.Auth.EnsureRoles(ctx); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := s.SeedAdmin(ctx, admin); err != nil {
		return err
	}
	if err := s.SeedSoftwares(ctx); err != nil {
		return err
	}
	if err := s.SeedDiscount(ctx); err != nil {
		return err
	}

	config.Logger.Info("All database seeding completed successfully")
	return nil
}

func (s *Seeder) SeedAdmin(ctx context.Context, admin AdminAccount) error {
	if admin.Password == "" {
		config.Logger.Warn("ADMIN_PASSWORD not set, skipping administrator seed")
		return nil
	}
	created, err := s.Auth.EnsureAdmin(ctx, admin.Login, admin.Password, admin.Email)
	if err != nil {
		return fmt.Errorf("seed admin %s: %w", admin.Login, err)
	}
	if created {
		config.Logger.Info("Created administrator", zap.String("login", admin.Login))
	}
	return nil
}

func (s *Seeder) SeedSoftwares(ctx context.Context) error {
	createdCount := 0
	for _, sw := range db.DemoSoftwares() {
		_, err := s.Softwares.AddSoftware(ctx, softwareServices.AddSoftwareInput{
			Name:           sw.Name,
			Description:    sw.Description,
			Category:       sw.Category,
			CurrentVersion: sw.CurrentVersion,
			BasePrice:      sw.BasePrice,
		})
		switch {
		case utils.IsKind(err, utils.KindConflict):
			continue
		case err != nil:
			config.Logger.Error("Failed to create software", zap.String("name", sw.Name), zap.Error(err))
			return fmt.Errorf("seed software %s: %w", sw.Name, err)
		}
		createdCount++
	}
	config.Logger.Info("Software seeding completed", zap.Int("created", createdCount))
	return nil
}

// SeedDiscount adds the demo promotion only when no discount exists yet.
func (s *Seeder) SeedDiscount(ctx context.Context) error {
	existing, err := s.Discounts.ListDiscounts(ctx)
	if err != nil {
		return fmt.Errorf("list discounts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	d := db.DemoDiscount(now())
	if _, err := s.Discounts.AddDiscount(ctx, contractServices.AddDiscountInput{
		Name:       d.Name,
		Percentage: d.Percentage,
		StartDate:  utils.DateOnly(d.StartDate),
		EndDate:    utils.DateOnly(d.EndDate),
	}); err != nil {
		return fmt.Errorf("seed discount: %w", err)
	}
	return nil
}
