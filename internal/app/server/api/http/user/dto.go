package user

import (
	"net/http"

	"artscout/internal/domain/user"
)

// UserInfo is the public user representation shared by auth responses.
type UserInfo struct {
	ID              string `json:"id"`
	Fullname        string `json:"fullname"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func toUserInfo(u user.User) UserInfo {
	return UserInfo{
		ID:              u.ID.String(),
		Fullname:        u.Fullname,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
	}
}

type registerInput struct {
	Body struct {
		Fullname string `json:"fullname,omitempty" required:"false" doc:"Display name"`
		Email    string `json:"email,omitempty" required:"false" format:"email"`
		Password string `json:"password,omitempty" required:"false"`
	}
}

type registerOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      RegisterResponse
}

type RegisterResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
	Token   string   `json:"token"`
}

type loginInput struct {
	Body struct {
		Email    string `json:"email,omitempty" required:"false"`
		Password string `json:"password,omitempty" required:"false"`
	}
}

type loginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      LoginResponse
}

type LoginResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

type logoutInput struct{}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}

type deleteInput struct{}

type deleteOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      MessageResponse
}

type meInput struct{}

type meOutput struct {
	Body UserInfo
}
