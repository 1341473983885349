package response

import (
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type CreateUserResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

func FromUserRM(rm readmodel.UserRM) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, &rm)
	return resp
}

func FromUserRMs(rms []readmodel.UserRM) []UserResponse {
	resps := make([]UserResponse, 0, len(rms))
	for _, rm := range rms {
		resps = append(resps, FromUserRM(rm))
	}
	return resps
}
