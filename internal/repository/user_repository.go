package repository

import (
	"movie_discovery/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserById(userId int64) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	UpdateProfileImage(userId int64, imageUrl string) error
	UpdateNotifToken(userId int64, notifToken string) error
	GetActiveNotifUsers() ([]model.User, error)
	CountUsers() (int64, error)
	CountActiveUsers() (int64, error)
	GetTopUsers(limit int) ([]model.TopUserRes, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetUserById(userId int64) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("id = ?", userId).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("username = ?", username).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("email = ?", email).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) UpdateProfileImage(userId int64, imageUrl string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userId).
		UpdateColumn("\"profileImage\"", imageUrl).
		Error
}

func (r *UserRepository) UpdateNotifToken(userId int64, notifToken string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userId).
		UpdateColumn("\"notifToken\"", notifToken).
		Error
}

//------------------------------------------
//------------------------------------------

// GetActiveNotifUsers returns active users that registered a device
// token, the audience of recommendation pushes.
func (r *UserRepository) GetActiveNotifUsers() ([]model.User, error) {
	var result []model.User
	err := r.db.
		Model(&model.User{}).
		Where("\"isActive\" = true AND \"notifToken\" != ''").
		Find(&result).
		Error
	return result, err
}

func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountActiveUsers() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("\"isActive\" = true").
		Count(&count).
		Error
	return count, err
}

func (r *UserRepository) GetTopUsers(limit int) ([]model.TopUserRes, error) {
	result := []model.TopUserRes{}

	queryStr := `
		SELECT u.username, COUNT(f.id) AS count
		FROM "User" u
			JOIN "Favorite" f ON f."userId" = u.id
		GROUP BY u.username
		ORDER BY count DESC
		LIMIT @lim;`

	err := r.db.Raw(queryStr,
		map[string]interface{}{
			"lim": limit,
		}).
		Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return result, nil
}
