package accessibility

type SettingResponse struct {
	Key         string   `json:"key"`
	Kind        string   `json:"kind"`
	DisplayName string   `json:"display_name"`
	EnumValues  []string `json:"enum_values,omitempty"`
	BoolValue   bool     `json:"bool_value,omitempty"`
	EnumValue   string   `json:"enum_value,omitempty"`
}

type SettingListResponse struct {
	Settings []SettingResponse `json:"settings"`
}

type UpdateSettingRequest struct {
	BoolValue *bool  `json:"bool_value"`
	EnumValue string `json:"enum_value"`
}

type ReadoutRequest struct {
	Text     string `json:"text" validate:"required,max=2000"`
	Simplify bool   `json:"simplify"`
}

type ReadoutResponse struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url"`
}
