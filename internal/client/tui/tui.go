package tui

// Имена страниц TUI.
const (
	Login   = "login"   // форма входа
	Message = "message" // модальное сообщение пользователю
)
