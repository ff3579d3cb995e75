package db

import (
	"errors"

	"github.com/terraincognita07/solfege/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("email = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// UpdateByID reports gorm.ErrRecordNotFound when no row carries userID.
func (repo *UserRepository) UpdateByID(userID string, updates map[string]any) error {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *UserRepository) ListStudents() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("role = ?", models.RoleStudent).
		Order("last_name ASC, first_name ASC, id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) ListStaff() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("role <> ?", models.RoleStudent).
		Order("last_name ASC, first_name ASC, email ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) ListRecentStaff(limit int) ([]models.User, error) {
	users := make([]models.User, 0, limit)
	if err := repo.database.
		Where("role <> ?", models.RoleStudent).
		Order("updated_at DESC, id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) CountActive() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) CountByRole() (map[string]int64, error) {
	return repo.countGroupedBy("role")
}

func (repo *UserRepository) InstrumentDistribution() (map[string]int64, error) {
	return repo.countGroupedBy("instrument")
}

func (repo *UserRepository) LevelDistribution() (map[string]int64, error) {
	return repo.countGroupedBy("level")
}

func (repo *UserRepository) countGroupedBy(column string) (map[string]int64, error) {
	var rows []struct {
		Bucket string `gorm:"column:bucket"`
		Total  int64  `gorm:"column:total"`
	}
	if err := repo.database.Model(&models.User{}).
		Select(column + " AS bucket, COUNT(*) AS total").
		Where(column + " <> ''").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Bucket] = row.Total
	}
	return counts, nil
}

// SaveStudentWithAvailabilities upserts a student by email and replaces all of
// their availabilities in one transaction. profile.ID is ignored; the stored
// user is returned.
func (repo *UserRepository) SaveStudentWithAvailabilities(profile models.User, slots []models.Availability) (models.User, int, error) {
	var saved models.User
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		result := tx.Where("email = ?", profile.Email).First(&existing)
		switch {
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			profile.ID = ""
			profile.Role = models.RoleStudent
			profile.IsActive = true
			profile.PasswordHash = nil
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
			saved = profile
		case result.Error != nil:
			return result.Error
		case existing.Role != models.RoleStudent:
			return models.ErrStaffAccountEmail
		default:
			updates := map[string]any{
				"first_name":           profile.FirstName,
				"last_name":            profile.LastName,
				"phone":                profile.Phone,
				"instrument":           profile.Instrument,
				"secondary_instrument": profile.SecondaryInstrument,
				"level":                profile.Level,
				"teacher":              profile.Teacher,
			}
			// The intake form rarely carries a birth date; keep the stored one.
			if profile.DateOfBirth != nil {
				updates["date_of_birth"] = profile.DateOfBirth
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", existing.ID).First(&saved).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", saved.ID).Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}

		rows := make([]models.Availability, 0, len(slots))
		for _, slot := range slots {
			rows = append(rows, models.Availability{
				UserID:    saved.ID,
				DayOfWeek: slot.DayOfWeek,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return models.User{}, 0, err
	}
	return saved, len(slots), nil
}

// DeleteStudentsAndAvailabilities removes every STUDENT account together with
// the availabilities they own. Staff rows are left untouched.
func (repo *UserRepository) DeleteStudentsAndAvailabilities() (int64, error) {
	var deleted int64
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		studentIDs := tx.Model(&models.User{}).Select("id").Where("role = ?", models.RoleStudent)
		if err := tx.Where("user_id IN (?)", studentIDs).Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		result := tx.Where("role = ?", models.RoleStudent).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
