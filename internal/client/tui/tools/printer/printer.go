package printer

import (
	"github.com/abezemskiy/novalogin/internal/client/tui"
	"github.com/abezemskiy/novalogin/internal/client/tui/app"
	"github.com/abezemskiy/novalogin/internal/repositories/credentials"

	"github.com/rivo/tview"
)

// Printer - модальный вывод сообщений пользователю поверх текущего экрана.
type Printer struct {
	app *app.App
}

// New создаёт Printer для приложения app.
func New(app *app.App) *Printer {
	return &Printer{app: app}
}

// Show выводит сообщение и ждёт подтверждения пользователем. Экран под сообщением не меняется.
func (p *Printer) Show(message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{credentials.OKLabel}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			p.app.Pages.RemovePage(tui.Message)
		})
	p.app.Pages.AddPage(tui.Message, modal, true, true)
}
