package preferences

type Preferences struct {
	Theme string `json:"theme"`
	Zoom  string `json:"zoom"`
}

type Repository interface {
	Get() Preferences
	Set(theme, zoom string) error
	SetTheme(theme string) error
}
