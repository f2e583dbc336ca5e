package entity

import "time"

// AccessibilitySetting is one stored preference row per (user, key).
// BoolValue and EnumValue are mutually exclusive, selected by Kind.
type AccessibilitySetting struct {
	UserID    string    `db:"user_id"`
	Key       string    `db:"setting_key"`
	Kind      string    `db:"kind"`
	BoolValue bool      `db:"bool_value"`
	EnumValue string    `db:"enum_value"`
	UpdatedAt time.Time `db:"updated_at"`
}
