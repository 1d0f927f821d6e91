package domain

import "time"

type Member struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Tier            Tier      `json:"tier"`
	SafetyCertified bool      `json:"safety_certified"`
	TelegramChatID  *int64    `json:"telegram_chat_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateMemberInput struct {
	Username        string
	Tier            Tier
	SafetyCertified bool
	TelegramChatID  *int64
}
