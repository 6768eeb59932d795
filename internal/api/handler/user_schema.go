package handler

import "time"

type createUserRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	UserName  string   `json:"userName" validate:"required"`
	Password  string   `json:"password" validate:"required,min=8"`
	Active    bool     `json:"active"`
	Roles     []string `json:"roles"`
}

type updateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
	Active    bool   `json:"active"`
}

type setUserRolesRequest struct {
	Roles []string `json:"roles"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserName  string    `json:"userName"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	Roles     []string  `json:"roles"`
}
