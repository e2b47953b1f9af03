package dialog

import (
	"github.com/abezemskiy/novalogin/internal/client/logger"
	"github.com/abezemskiy/novalogin/internal/common/credentials/tools/checker"
	"github.com/abezemskiy/novalogin/internal/common/credentials/tools/filter"
	"github.com/abezemskiy/novalogin/internal/repositories/credentials"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dialog - логика диалога входа, не привязанная к конкретному интерфейсу.
// Диалог одноразовый: после принятия данных или отмены он закрыт и больше ничего не передает наружу.
type Dialog struct {
	id        string
	presenter credentials.Presenter
	receiver  credentials.Receiver
	closed    bool
	log       *zap.Logger
}

// NewDialog - создает открытый диалог входа.
func NewDialog(presenter credentials.Presenter, receiver credentials.Receiver) *Dialog {
	id := uuid.NewString()
	return &Dialog{
		id:        id,
		presenter: presenter,
		receiver:  receiver,
		log:       logger.ClientLog.With(zap.String("dialog", id)),
	}
}

// ID - идентификатор экземпляра диалога.
func (d *Dialog) ID() string {
	return d.id
}

// Closed - закрыт ли диалог.
func (d *Dialog) Closed() bool {
	return d.closed
}

// OnKeystroke - решает, допускается ли символ r в поле field.
// text - значение поля вместе с символом r.
func (d *Dialog) OnKeystroke(field credentials.Field, text string, r rune) bool {
	ok := filter.Admit(field, text, r)
	if !ok {
		d.log.Debug("keystroke rejected", zap.Stringer("field", field))
	}
	return ok
}

// OnSubmit - проверяет введенные данные.
// Принятые данные передаются получателю и диалог закрывается,
// при отклонении сообщение выводится пользователю, а диалог остается открытым.
func (d *Dialog) OnSubmit(username, password string) credentials.Result {
	res := checker.Validate(username, password)
	if d.closed {
		d.log.Warn("submit on closed dialog ignored", zap.String("username", username))
		return res
	}

	if !res.Accepted {
		d.log.Info("credentials rejected", zap.String("username", username), zap.String("reason", res.Message))
		d.presenter.Show(res.Message)
		return res
	}

	d.closed = true
	d.log.Info("credentials accepted", zap.String("username", username))
	d.receiver.Accept(res.Credentials)
	return res
}

// OnCancel - закрывает диалог без проверки введенных данных.
func (d *Dialog) OnCancel() credentials.CancelSignal {
	if d.closed {
		return credentials.CancelSignal{}
	}
	d.closed = true
	d.log.Info("dialog cancelled")
	d.receiver.Cancel()
	return credentials.CancelSignal{}
}
