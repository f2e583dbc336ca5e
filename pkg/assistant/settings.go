package assistant

type Setting struct {
	Key         SettingKey  `json:"key"`
	Kind        SettingKind `json:"kind"`
	DisplayName string      `json:"display_name"`
	EnumValues  []string    `json:"enum_values,omitempty"`
	DefaultBool bool        `json:"default_bool,omitempty"`
	DefaultEnum string      `json:"default_enum,omitempty"`
}

func (s Setting) Default() Value {
	if s.Kind == SettingKindEnum {
		return EnumValue(s.DefaultEnum)
	}
	return BoolValue(s.DefaultBool)
}

var settingRegistry = []Setting{
	{
		Key:         SettingHighContrast,
		Kind:        SettingKindBoolean,
		DisplayName: "High Contrast",
	},
	{
		Key:         SettingLargeText,
		Kind:        SettingKindBoolean,
		DisplayName: "Large Text",
	},
	{
		Key:         SettingTextToSpeech,
		Kind:        SettingKindBoolean,
		DisplayName: "Text To Speech",
	},
	{
		Key:         SettingReduceMotion,
		Kind:        SettingKindBoolean,
		DisplayName: "Reduce Motion",
	},
	{
		Key:         SettingColorBlindMode,
		Kind:        SettingKindEnum,
		DisplayName: "Color Blind Mode",
		EnumValues:  []string{"none", "protanopia", "deuteranopia", "tritanopia"},
		DefaultEnum: "none",
	},
	{
		Key:         SettingFontSize,
		Kind:        SettingKindEnum,
		DisplayName: "Font Size",
		// "extra large" sits before "large" so the longer phrase wins the
		// substring scan.
		EnumValues:  []string{"extra large", "small", "medium", "large"},
		DefaultEnum: "medium",
	},
}

func Registry() []Setting {
	out := make([]Setting, len(settingRegistry))
	copy(out, settingRegistry)
	return out
}

func LookupSetting(key SettingKey) (Setting, bool) {
	for _, s := range settingRegistry {
		if s.Key == key {
			return s, true
		}
	}
	return Setting{}, false
}

func (s Setting) ValidEnumValue(v string) bool {
	for _, ev := range s.EnumValues {
		if ev == v {
			return true
		}
	}
	return false
}
