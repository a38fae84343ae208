package colorize

const DefaultTheme = "default"

// BuiltinThemes returns a fresh copy of the themes shipped with the dashboard.
func BuiltinThemes() map[string]Theme {
	return map[string]Theme{
		"default": {
			Min: "#C80000",
			Mid: "#FFFFFF",
			Max: "#10A54A",
		},
		"blue-white-red": {
			Min: "#312F9D",
			Mid: "#FFFFFF",
			Max: "#C80000",
		},
	}
}
