package dto

// Theme is the pair of brand color tokens the public site applies as CSS
// variables.
type Theme struct {
	Primary string `json:"primary" validate:"required,hexcolor6"`
	Hover   string `json:"hover" validate:"required,hexcolor6"`
}

// DefaultTheme returns the built-in brand colors used until an admin saves
// a theme setting.
func DefaultTheme() Theme {
	return Theme{Primary: "#e10600", Hover: "#b20500"}
}
