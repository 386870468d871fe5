package importer

import (
	"context"

	"github.com/angelmondragon/cardvault-importer/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cardvault-importer/pkg/errors"
	"gorm.io/gorm"
)

// Store is the persistence surface the pipeline drives. The previous run's
// rows are wiped before a new run begins; cards land batch by batch and the
// summary lands once, at the end.
type Store interface {
	DeleteAllCards(ctx context.Context) error
	DeleteAllSummaries(ctx context.Context) error
	InsertCards(ctx context.Context, cards []models.Card) error
	InsertSummary(ctx context.Context, summary models.CollectionSummary) error
}

// Repository implements Store on the shared GORM connection.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DeleteAllCards(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Card{}).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistenceFailed, err, "deleting cards")
	}
	return nil
}

func (r *Repository) DeleteAllSummaries(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.CollectionSummary{}).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistenceFailed, err, "deleting summaries")
	}
	return nil
}

func (r *Repository) InsertCards(ctx context.Context, cards []models.Card) error {
	if len(cards) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&cards).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistenceFailed, err, "inserting cards")
	}
	return nil
}

func (r *Repository) InsertSummary(ctx context.Context, summary models.CollectionSummary) error {
	if err := r.db.WithContext(ctx).Create(&summary).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistenceFailed, err, "inserting summary")
	}
	return nil
}
