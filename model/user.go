package model

import "time"

type User struct {
	UserId       int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	Username     string    `gorm:"column:username;type:text;not null;uniqueIndex:User_username_key;" json:"username"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex:User_email_key;" json:"email"`
	Password     string    `gorm:"column:password;type:text;not null;" json:"-"`
	FirstName    string    `gorm:"column:firstName;type:text;default:\"\";not null;" json:"firstName"`
	LastName     string    `gorm:"column:lastName;type:text;default:\"\";not null;" json:"lastName"`
	Bio          string    `gorm:"column:bio;type:text;default:\"\";not null;" json:"bio"`
	ProfileImage string    `gorm:"column:profileImage;type:text;default:\"\";not null;" json:"profileImage"`
	NotifToken   string    `gorm:"column:notifToken;type:text;default:\"\";not null;" json:"-"`
	IsActive     bool      `gorm:"column:isActive;type:boolean;default:true;not null;" json:"isActive"`
	CreatedAt    time.Time `gorm:"column:createdAt;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;type:timestamp(3);not null;" json:"updatedAt"`

	Favorites []Favorite `gorm:"foreignKey:UserId;references:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (User) TableName() string {
	return "User"
}

//------------------------------------
//------------------------------------

type UserViewModel struct {
	UserId       int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

func (u *User) ViewModel() UserViewModel {
	return UserViewModel{
		UserId:       u.UserId,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
	}
}

//------------------------------------
//------------------------------------

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type NotifTokenRequest struct {
	NotifToken string `json:"notifToken"`
}

type UserAuthRes struct {
	User   UserViewModel `json:"user"`
	Tokens TokensRes     `json:"tokens"`
}

type TokensRes struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}
