package services

import (
	"context"
	"fmt"

	"cafe-julio/db"
	"cafe-julio/models"
)

const (
	demoBaristaEmail    = "demo@cafe.com"
	demoBaristaPassword = "demo123"
	demoBaristaName     = "Admin Café"
)

// SeedDemoBarista creates the demo credential unless it already exists.
func SeedDemoBarista(ctx context.Context) (created bool, err error) {
	existing, err := GetBaristaByEmail(ctx, demoBaristaEmail)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := CreateBaristaCredential(ctx, demoBaristaEmail, demoBaristaPassword, demoBaristaName); err != nil {
		return false, fmt.Errorf("create demo barista: %w", err)
	}
	return true, nil
}

// SeedBaselineMenu inserts a starter item per category, skipping any
// category that already has rows so reruns are safe.
func SeedBaselineMenu(ctx context.Context) (int, error) {
	baseline := []models.MenuItem{
		{Name: "Prato do Dia", Description: "Prato executivo do dia", Category: models.CategoryDaily, Price: 2500, IsAvailable: true},
		{Name: "Coxinha", Description: "Coxinha de frango crocante", Category: models.CategorySalgados, Price: 850, IsAvailable: true},
		{Name: "Pão de Queijo", Category: models.CategorySalgados, Price: 600, IsAvailable: true},
		{Name: "Bolo de Cenoura", Description: "Com cobertura de chocolate", Category: models.CategoryDoces, Price: 1200, IsAvailable: true},
		{Name: "Brigadeiro", Category: models.CategoryDoces, Price: 450, IsAvailable: true},
		{Name: "Marmita Fit Frango Grelhado", Category: models.CategoryMarmitasFrango, Price: 2800, IsAvailable: true},
		{Name: "Marmita Fit Carne Assada", Category: models.CategoryMarmitasCarne, Price: 3000, IsAvailable: true},
		{Name: "Sopa de Legumes", Category: models.CategoryMarmitasSopa, Price: 1800, IsAvailable: true},
	}

	inserted := 0
	for _, item := range baseline {
		existing, err := ListMenuByCategory(ctx, item.Category, false)
		if err != nil {
			return inserted, err
		}
		if containsItemNamed(existing, item.Name) {
			continue
		}
		if _, err := AddMenuItem(ctx, item); err != nil {
			return inserted, fmt.Errorf("seed %q: %w", item.Name, err)
		}
		inserted++
	}
	return inserted, nil
}

func containsItemNamed(items []models.MenuItem, name string) bool {
	for _, it := range items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Seed runs the whole one-shot seeding flow (demo barista + baseline
// menu). Not part of the request path; invoked by the seed subcommand.
func Seed(ctx context.Context) error {
	if !db.Ready() {
		return ErrStoreUnavailable
	}
	created, err := SeedDemoBarista(ctx)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Seed: barista %s created (password %s)\n", demoBaristaEmail, demoBaristaPassword)
	} else {
		fmt.Println("Seed: barista already exists")
	}
	n, err := SeedBaselineMenu(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Seed: %d menu items inserted\n", n)
	return nil
}
