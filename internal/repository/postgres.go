package repository

import (
	"context"

	"gift-card-checker-service/internal/models"
	"gorm.io/gorm"
)

// PostgresRepository stores submissions in a single relational table.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Migrate creates the data_entries table if it does not exist. Run once at
// boot, never per request.
func (r *PostgresRepository) Migrate() error {
	return r.db.AutoMigrate(&models.Submission{})
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Order("date_checked DESC, id DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Submission{})
	return res.RowsAffected, res.Error
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) ExistsByCard(ctx context.Context, cardNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("input_data = ?", cardNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *PostgresRepository) DeleteByCard(ctx context.Context, cardNumber string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("input_data = ?", cardNumber).
		Delete(&models.Submission{})
	return res.RowsAffected, res.Error
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgresRepository) Name() string {
	return "postgres"
}
