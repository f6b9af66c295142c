package dto

type RegisterRequestDTO struct {
	FullName string `json:"fullName" example:"Asha Verma"`
	Email    string `json:"email" example:"asha@scrapsync.in"`
	Password string `json:"password" example:"secret"`
	Phone    string `json:"phone" example:"+919800000001"`
	Role     string `json:"role" example:"MCP" enums:"MCP,PICKUP_PARTNER"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
	UserID  int    `json:"userId" example:"1"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"asha@scrapsync.in"`
	Password string `json:"password" example:"secret"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
	Token   string `json:"token"`
}

type UpdateProfileRequestDTO struct {
	FullName string `json:"fullName,omitempty" example:"Asha P. Verma"`
	Phone    string `json:"phone,omitempty" example:"+919800000009"`
}

type ProfileResponseDTO struct {
	ID       int    `json:"id" example:"1"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" example:"MCP"`
	Status   string `json:"status" example:"ACTIVE"`
}
