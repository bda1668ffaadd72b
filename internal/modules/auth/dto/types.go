package dto

type LoginInput struct {
	Username string
	Password string
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type SessionOutput struct {
	Username    string
	Email       string
	DisplayName string
}
