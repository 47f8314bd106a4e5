package service

import (
	"echo-journal/database"
	"echo-journal/database/model"
	"echo-journal/logger"
	"echo-journal/web/entity"
)

type UserService struct{}

func (s *UserService) GetAll() ([]*model.User, error) {
	db := database.GetDB()

	var users []*model.User
	err := db.Model(model.User{}).
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByEmail returns nil without an error when no user matches.
func (s *UserService) GetByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// SocialUpsert inserts the user on first login. A duplicate email is a
// normal, silent no-op: the sentinel result is returned instead of an error.
// The unique index on email closes the check-then-insert race, so a
// concurrent duplicate insert also lands on the sentinel path.
func (s *UserService) SocialUpsert(user *model.User) (*entity.UpsertResult, error) {
	existing, err := s.GetByEmail(user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &entity.UpsertResult{Message: "User already exist", InsertedId: nil}, nil
	}

	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return &entity.UpsertResult{Message: "User already exist", InsertedId: nil}, nil
		}
		return nil, err
	}
	return &entity.UpsertResult{InsertedId: user.Id}, nil
}

// Register inserts unconditionally; a duplicate email surfaces as a
// unique-index violation for the controller to translate.
func (s *UserService) Register(user *model.User) (int, error) {
	db := database.GetDB()

	if err := db.Create(user).Error; err != nil {
		return 0, err
	}
	return user.Id, nil
}

func (s *UserService) GrantAdmin(id int) (int64, error) {
	db := database.GetDB()

	result := db.Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"role": model.RoleAdmin})
	return result.RowsAffected, result.Error
}

func (s *UserService) GrantPremium(email string, premiumExpireDate string) (int64, error) {
	db := database.GetDB()

	result := db.Model(model.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"is_premium":          model.PremiumYes,
			"premium_expire_date": premiumExpireDate,
		})
	return result.RowsAffected, result.Error
}

// GetPremiumUsers returns every user currently flagged premium.
func (s *UserService) GetPremiumUsers() ([]*model.User, error) {
	db := database.GetDB()

	var users []*model.User
	err := db.Model(model.User{}).
		Where("is_premium = ?", model.PremiumYes).
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ClearPremium demotes a user back to the free tier.
func (s *UserService) ClearPremium(email string) error {
	db := database.GetDB()

	err := db.Model(model.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"is_premium":          model.PremiumNo,
			"premium_expire_date": "",
		}).Error
	if err != nil {
		logger.Warning("clear premium err:", err)
	}
	return err
}
