package domain

// Screen is the view a chat is currently showing
type Screen string

const (
	ScreenHome            Screen = "home"
	ScreenCards           Screen = "cards"
	ScreenWaitingPassword Screen = "waiting_password"
)

// ChatState holds per-chat presentation state
type ChatState struct {
	Screen Screen
}
