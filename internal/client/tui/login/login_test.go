package login

import (
	"testing"

	"github.com/abezemskiy/novalogin/internal/client/dialog"
	"github.com/abezemskiy/novalogin/internal/client/tui"
	"github.com/abezemskiy/novalogin/internal/client/tui/app"
	"github.com/abezemskiy/novalogin/internal/repositories/credentials"
	"github.com/abezemskiy/novalogin/internal/repositories/mocks"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/mock/gomock"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// press - нажатие кнопки формы клавишей Enter.
func press(button *tview.Button) {
	button.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(tview.Primitive) {})
}

func TestNewForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	form := NewForm(dialog.NewDialog(mocks.NewMockPresenter(ctrl), mocks.NewMockReceiver(ctrl)))

	// Проверяю поля формы
	require.Equal(t, 2, form.GetFormItemCount(), "Form must contain 2 fields")
	assert.Equal(t, "用户名:", form.GetFormItem(0).GetLabel())
	assert.Equal(t, "密码:", form.GetFormItem(1).GetLabel())

	// Проверяю кнопки формы
	require.Equal(t, 2, form.GetButtonCount())
	assert.Equal(t, "确定", form.GetButton(0).GetLabel())
	assert.Equal(t, "取消", form.GetButton(1).GetLabel())
}

func TestAccept(t *testing.T) {
	d := dialog.NewDialog(nil, nil)

	username := accept(d, credentials.Username)
	assert.Equal(t, true, username("user1", '1'))
	assert.Equal(t, false, username("user!", '!'))

	password := accept(d, credentials.Password)
	assert.Equal(t, true, password("pass!", '!'))
	assert.Equal(t, false, password("pass?", '?'))
	assert.Equal(t, false, password("Abcdefg1!Abcdefg1!Abc", 'c'))
}

func TestSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	{
		// Некорректные данные: сообщение выводится, значения полей не меняются
		presenter := mocks.NewMockPresenter(ctrl)
		receiver := mocks.NewMockReceiver(ctrl)
		form := NewForm(dialog.NewDialog(presenter, receiver))

		form.GetFormItem(0).(*tview.InputField).SetText("longenoughuser")
		form.GetFormItem(1).(*tview.InputField).SetText("short1!")

		presenter.EXPECT().Show(credentials.PasswordShort)
		press(form.GetButton(0))

		assert.Equal(t, "longenoughuser", form.GetFormItem(0).(*tview.InputField).GetText())
		assert.Equal(t, "short1!", form.GetFormItem(1).(*tview.InputField).GetText())
	}
	{
		// Корректные данные передаются получателю
		presenter := mocks.NewMockPresenter(ctrl)
		receiver := mocks.NewMockReceiver(ctrl)
		form := NewForm(dialog.NewDialog(presenter, receiver))

		form.GetFormItem(0).(*tview.InputField).SetText("longenoughuser")
		form.GetFormItem(1).(*tview.InputField).SetText("Abcdefg1!")

		receiver.EXPECT().Accept(credentials.Credentials{Username: "longenoughuser", Password: "Abcdefg1!"})
		press(form.GetButton(0))
	}
}

func TestCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presenter := mocks.NewMockPresenter(ctrl)
	receiver := mocks.NewMockReceiver(ctrl)
	form := NewForm(dialog.NewDialog(presenter, receiver))

	// Отмена не проверяет введенные данные
	form.GetFormItem(0).(*tview.InputField).SetText("x")

	receiver.EXPECT().Cancel()
	press(form.GetButton(1))
}

func TestPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	receiver := mocks.NewMockReceiver(ctrl)

	testApp := &app.App{Pages: tview.NewPages()}
	page := Page(receiver)(testApp)
	testApp.Pages.AddPage(tui.Login, page, true, true)

	form, ok := page.(*tview.Form)
	require.True(t, ok, "Page must return *tview.Form")

	// Пустые поля: сообщение выводится модально поверх формы
	press(form.GetButton(0))
	assert.True(t, testApp.Pages.HasPage(tui.Message))
	assert.True(t, testApp.Pages.HasPage(tui.Login))
}
