package whatsapp

// Target адресат уведомления
type Target string

const (
	TargetCustomer Target = "customer"
	TargetOwner    Target = "owner"
)

// Message исходящее WhatsApp сообщение
type Message struct {
	To     string // нормализованный номер: цифры и необязательный ведущий '+'
	Body   string
	Target Target
}

// Receipt результат отправки
type Receipt struct {
	ID  string // SID сообщения у провайдера или сгенерированная ссылка
	URL string // для LinkSender - ссылка wa.me
}
