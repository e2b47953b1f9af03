package login

import (
	"github.com/abezemskiy/novalogin/internal/client/dialog"
	"github.com/abezemskiy/novalogin/internal/client/tui/app"
	"github.com/abezemskiy/novalogin/internal/client/tui/tools/printer"
	"github.com/abezemskiy/novalogin/internal/repositories/credentials"

	"github.com/rivo/tview"
)

// Page - страница входа. Итог диалога получает receiver, сообщения выводятся модально поверх страницы.
func Page(receiver credentials.Receiver) func(app *app.App) tview.Primitive {
	return func(app *app.App) tview.Primitive {
		return NewForm(dialog.NewDialog(printer.New(app), receiver))
	}
}

// NewForm - форма входа, события которой обрабатывает d.
func NewForm(d *dialog.Dialog) *tview.Form {
	form := tview.NewForm()

	form.AddInputField(credentials.UsernameLabel, "", credentials.MaxLength, accept(d, credentials.Username), nil)
	form.AddPasswordField(credentials.PasswordLabel, "", credentials.MaxLength, '*', nil)

	username := form.GetFormItemByLabel(credentials.UsernameLabel).(*tview.InputField)
	password := form.GetFormItemByLabel(credentials.PasswordLabel).(*tview.InputField)
	password.SetAcceptanceFunc(accept(d, credentials.Password))

	form.AddButton(credentials.OKLabel, func() { d.OnSubmit(username.GetText(), password.GetText()) })
	form.AddButton(credentials.CancelLabel, func() { d.OnCancel() })

	form.SetBorder(true).SetTitle(credentials.Title).SetTitleAlign(tview.AlignCenter)

	return form
}

// accept - фильтр нажатий клавиш для поля field.
func accept(d *dialog.Dialog, field credentials.Field) func(textToCheck string, lastChar rune) bool {
	return func(textToCheck string, lastChar rune) bool {
		return d.OnKeystroke(field, textToCheck, lastChar)
	}
}
