package seeds

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/users/model"
)

func SeedUsers(db *gorm.DB) error {
	fixtures := []struct {
		name  string
		email string
		role  string
	}{
		{"System Admin", "admin@school.local", "admin"},
		{"Alice Rahman", "alice.rahman@school.local", "teacher"},
		{"Budi Santoso", "budi.santoso@school.local", "teacher"},
		{"Front Desk", "frontdesk@school.local", "staff"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, f := range fixtures {
		u := model.UserModel{
			UserFullName: f.name,
			UserEmail:    f.email,
			UserPassword: string(hash),
			UserRole:     f.role,
			UserIsActive: true,
		}
		if err := db.
			Where("user_email = ?", f.email).
			FirstOrCreate(&u).Error; err != nil {
			return err
		}
	}
	return nil
}
