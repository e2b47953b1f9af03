package app

import (
	"github.com/abezemskiy/novalogin/internal/repositories/credentials"

	"github.com/rivo/tview"
)

// App представляет TUI-приложение.
type App struct {
	App   *tview.Application
	Pages *tview.Pages
}

// Primitives - структуры для хранения и передачи экранов.
type Primitives struct {
	Name string
	Prim func(*App) tview.Primitive
}

// NewApp создаёт новое TUI-приложение. Первый экран в prims показывается при запуске.
func NewApp(prims []Primitives) *App {
	tuiApp := &App{
		App:   tview.NewApplication(),
		Pages: tview.NewPages(),
	}

	for i, p := range prims {
		tuiApp.Pages.AddPage(p.Name, p.Prim(tuiApp), true, i == 0)
	}

	tuiApp.App.SetRoot(tuiApp.Pages, true)

	return tuiApp
}

// Run запускает приложение и блокируется до его остановки.
func (a *App) Run() error {
	return a.App.Run()
}

// SwitchTo переключает экран.
func (a *App) SwitchTo(page string) {
	a.Pages.SwitchToPage(page)
}

// Stop останавливает приложение.
func (a *App) Stop() {
	if a.App != nil {
		a.App.Stop()
	}
}

// Outcome - получатель итога диалога входа, останавливающий приложение при закрытии диалога.
type Outcome struct {
	app         *App
	accepted    bool
	cancelled   bool
	credentials credentials.Credentials
}

// NewOutcome создаёт получателя итога для приложения app.
func NewOutcome(app *App) *Outcome {
	return &Outcome{app: app}
}

// Accept сохраняет принятые данные и закрывает приложение.
func (o *Outcome) Accept(creds credentials.Credentials) {
	o.accepted = true
	o.credentials = creds
	o.app.Stop()
}

// Cancel отмечает отмену и закрывает приложение.
func (o *Outcome) Cancel() {
	o.cancelled = true
	o.app.Stop()
}

// Result возвращает принятые данные. ok равен false, если данные не были приняты.
func (o *Outcome) Result() (creds credentials.Credentials, ok bool) {
	return o.credentials, o.accepted
}

// Cancelled - был ли диалог отменен.
func (o *Outcome) Cancelled() bool {
	return o.cancelled
}
