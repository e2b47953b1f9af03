package credentials

//go:generate mockgen -destination=../mocks/mock_credentials.go -package=mocks github.com/abezemskiy/novalogin/internal/repositories/credentials Presenter,Receiver

// Field - идентификатор поля формы входа.
type Field int

const (
	Username Field = iota // поле имени пользователя
	Password              // поле пароля
)

// String - имя поля для логов.
func (f Field) String() string {
	switch f {
	case Username:
		return "username"
	case Password:
		return "password"
	default:
		return "unknown"
	}
}

const (
	MinLength = 8  // минимальная длина имени пользователя и пароля
	MaxLength = 20 // максимальная длина значения любого поля

	Backspace = '\b' // управляющий символ, который всегда допускается в поле
)

// Надписи формы.
const (
	Title         = "登录"
	UsernameLabel = "用户名:"
	PasswordLabel = "密码:"
	OKLabel       = "确定"
	CancelLabel   = "取消"
)

// Сообщения, которые получает пользователь при отклонении введенных данных.
const (
	UsernameEmpty   = "用户名不能为空！"
	UsernameShort   = "用户名至少需要8位！"
	PasswordEmpty   = "密码不能为空！"
	PasswordShort   = "密码至少需要8位！"
	PasswordComplex = "密码需要包含大小写字母、数字和特殊符号！"
)

// Credentials - введенная пара имя пользователя и пароль.
type Credentials struct {
	Username string `json:"username" validate:"required,min=8"`
	Password string `json:"password" validate:"required,min=8,complexity"`
}

// Result - итог проверки введенных данных: либо данные приняты, либо отклонены с сообщением.
type Result struct {
	Accepted    bool
	Credentials Credentials // заполнено только для принятых данных
	Message     string      // заполнено только для отклоненных данных
}

// Accept - создает результат принятых данных.
func Accept(creds Credentials) Result {
	return Result{Accepted: true, Credentials: creds}
}

// Reject - создает результат отклоненных данных с сообщением для пользователя.
func Reject(message string) Result {
	return Result{Message: message}
}

// CancelSignal - сигнал закрытия диалога без данных.
type CancelSignal struct{}

// Presenter - поверхность для модального вывода сообщения пользователю.
type Presenter interface {
	Show(message string)
}

// Receiver - сторона, которая открыла диалог и получает его итог.
type Receiver interface {
	Accept(creds Credentials) // данные приняты, диалог закрывается
	Cancel()                  // диалог закрыт без данных
}
