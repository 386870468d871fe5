package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/cardvault-importer/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Card{}, &models.CollectionSummary{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return conn
}

func testCard(scryfallID string) models.Card {
	return models.Card{
		ID:             uuid.New(),
		Quantity:       1,
		SourceID:       "src-" + scryfallID,
		ScryfallID:     scryfallID,
		UnitPriceCents: 100,
		Name:           "Card " + scryfallID,
		SetCode:        "tst",
		SetName:        "Test Set",
		Rarity:         "common",
		Layout:         "normal",
		FrontSmall:     "s",
		FrontNormal:    "n",
		FrontLarge:     "l",
	}
}

func TestRepositoryInsertAndDeleteCards(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.InsertCards(ctx, []models.Card{testCard("a"), testCard("b")}); err != nil {
		t.Fatalf("InsertCards: %v", err)
	}

	var count int64
	if err := repo.db.Model(&models.Card{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 cards, got %d", count)
	}

	if err := repo.DeleteAllCards(ctx); err != nil {
		t.Fatalf("DeleteAllCards: %v", err)
	}
	if err := repo.db.Model(&models.Card{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cards table, got %d", count)
	}
}

func TestRepositoryInsertCardsEmptyBatch(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	if err := repo.InsertCards(context.Background(), nil); err != nil {
		t.Fatalf("expected empty batch to be a no-op, got %v", err)
	}
}

func TestRepositorySummaryLifecycle(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	var totals RunTotals
	totals.AddBatch([]models.Card{testCard("a")})

	if err := repo.InsertSummary(ctx, totals.Summary(time.Now().UTC())); err != nil {
		t.Fatalf("InsertSummary: %v", err)
	}

	var stored models.CollectionSummary
	if err := repo.db.First(&stored).Error; err != nil {
		t.Fatalf("loading summary: %v", err)
	}
	if stored.TotalCards != 1 || stored.TotalValueCents != 100 {
		t.Fatalf("unexpected summary %+v", stored)
	}

	if err := repo.DeleteAllSummaries(ctx); err != nil {
		t.Fatalf("DeleteAllSummaries: %v", err)
	}
	var count int64
	if err := repo.db.Model(&models.CollectionSummary{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected summaries wiped, got %d", count)
	}
}
