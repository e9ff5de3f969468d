package entities

// PaymentEvent is the payload of one payments.status.changed message.
type PaymentEvent struct {
	OrderID   string
	Status    PaymentStatusType
	Reference string
}

type PaymentStatusType string

const (
	PaymentSuccess   PaymentStatusType = "success"
	PaymentFailed    PaymentStatusType = "failed"
	PaymentAbandoned PaymentStatusType = "abandoned"
)

func (s PaymentStatusType) String() string {
	return string(s)
}
