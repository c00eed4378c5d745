package dto

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	StartsAt    string  `json:"starts_at" binding:"required"`
	EndsAt      string  `json:"ends_at" binding:"required"`
	Visibility  string  `json:"visibility" binding:"required,oneof=public private"`
	PIN         *string `json:"pin"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
}

type UpdateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	StartsAt    string  `json:"starts_at" binding:"required"`
	EndsAt      string  `json:"ends_at" binding:"required"`
	Visibility  string  `json:"visibility" binding:"required,oneof=public private"`
	PIN         *string `json:"pin"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
}

type RecordAttendanceRequest struct {
	PIN *string `json:"pin"`
}

type LeaveEventRequest struct {
	Reason string `json:"reason"`
}

type SendCertificatesRequest struct {
	SendToAll bool     `json:"send_to_all"`
	UserIDs   []string `json:"user_ids" binding:"omitempty,dive,uuid"`
}

type SetTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
