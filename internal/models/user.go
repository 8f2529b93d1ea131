package models

import "time"

// User represents a profile of the platform. Trainers are users with IsAthlete == false.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email            string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Username         string    `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Name             string    `json:"name"`
	Surname          string    `json:"surname"`
	Height           float64   `json:"height"`
	Weight           int       `json:"weight"`
	BirthDate        string    `json:"birth_date"`
	Location         string    `json:"location"`
	Longitude        *float64  `json:"longitude,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	RegistrationDate string    `json:"registration_date"`
	IsAthlete        bool      `json:"is_athlete"`
	IsBlocked        bool      `json:"is_blocked" gorm:"default:false"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// Coordinates returns the stored geographic point, or nil when the user has none.
func (u *User) Coordinates() *Coordinates {
	if u.Longitude == nil || u.Latitude == nil {
		return nil
	}
	return &Coordinates{Longitude: *u.Longitude, Latitude: *u.Latitude}
}

// SetCoordinates stores the given point on the profile.
func (u *User) SetCoordinates(c *Coordinates) {
	if c == nil {
		return
	}
	lng, lat := c.Longitude, c.Latitude
	u.Longitude = &lng
	u.Latitude = &lat
}

// UserCreate is the request body for registering a user.
type UserCreate struct {
	Email            string    `json:"email" validate:"required"`
	Password         string    `json:"password" validate:"required,min=6"`
	Username         string    `json:"username" validate:"required,min=3,max=100"`
	Name             string    `json:"name" validate:"required"`
	Surname          string    `json:"surname" validate:"required"`
	Height           float64   `json:"height" validate:"gte=0"`
	Weight           int       `json:"weight" validate:"gte=0"`
	BirthDate        string    `json:"birth_date"`
	Location         string    `json:"location"`
	RegistrationDate string    `json:"registration_date"`
	IsAthlete        bool      `json:"is_athlete"`
	Coordinates      []float64 `json:"coordinates" validate:"omitempty,len=2"`
}

// UserIDPCreate is the request body for registering a user authenticated by an external identity provider.
type UserIDPCreate struct {
	Email            string    `json:"email" validate:"required"`
	Username         string    `json:"username" validate:"required,min=3,max=100"`
	Name             string    `json:"name" validate:"required"`
	Surname          string    `json:"surname" validate:"required"`
	Height           float64   `json:"height" validate:"gte=0"`
	Weight           int       `json:"weight" validate:"gte=0"`
	BirthDate        string    `json:"birth_date"`
	Location         string    `json:"location"`
	RegistrationDate string    `json:"registration_date"`
	IsAthlete        bool      `json:"is_athlete"`
	Coordinates      []float64 `json:"coordinates" validate:"omitempty,len=2"`
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username    *string   `json:"username" validate:"omitempty,min=3,max=100"`
	Name        *string   `json:"name"`
	Surname     *string   `json:"surname"`
	Height      *float64  `json:"height" validate:"omitempty,gte=0"`
	Weight      *int      `json:"weight" validate:"omitempty,gte=0"`
	BirthDate   *string   `json:"birth_date"`
	Location    *string   `json:"location"`
	Coordinates []float64 `json:"coordinates" validate:"omitempty,len=2"`
}

// Profile builds the user row described by a registration body.
func (in *UserCreate) Profile() *User {
	return &User{
		Email:            in.Email,
		Username:         in.Username,
		Name:             in.Name,
		Surname:          in.Surname,
		Height:           in.Height,
		Weight:           in.Weight,
		BirthDate:        in.BirthDate,
		Location:         in.Location,
		RegistrationDate: in.RegistrationDate,
		IsAthlete:        in.IsAthlete,
	}
}

// Profile builds the user row described by an IDP registration body.
func (in *UserIDPCreate) Profile() *User {
	return &User{
		Email:            in.Email,
		Username:         in.Username,
		Name:             in.Name,
		Surname:          in.Surname,
		Height:           in.Height,
		Weight:           in.Weight,
		BirthDate:        in.BirthDate,
		Location:         in.Location,
		RegistrationDate: in.RegistrationDate,
		IsAthlete:        in.IsAthlete,
	}
}
