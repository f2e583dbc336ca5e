package entity

import "time"

// AssistantCommand records one applied voice command for history readback.
type AssistantCommand struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Transcript string    `db:"transcript"`
	SettingKey string    `db:"setting_key"`
	Value      string    `db:"value"`
	Response   string    `db:"response"`
	AudioURL   string    `db:"audio_url"`
	CreatedAt  time.Time `db:"created_at"`
}
