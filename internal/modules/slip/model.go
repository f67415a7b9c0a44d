package slip

import "github.com/google/uuid"

// PaymentMethod represents how a slip was paid.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentWeChat PaymentMethod = "wechat"
	PaymentPayPay PaymentMethod = "paypay"
	PaymentAlipay PaymentMethod = "alipay"
)

// PaymentMethods is the full catalog in presentation order. Consumers of
// payment breakdowns always receive all five entries, zero-filled.
var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentCredit,
	PaymentWeChat,
	PaymentPayPay,
	PaymentAlipay,
}

// PaymentLabels maps each method to its display label.
var PaymentLabels = map[PaymentMethod]string{
	PaymentCash:   "现金",
	PaymentCredit: "クレジットカード",
	PaymentWeChat: "WeChat Pay",
	PaymentPayPay: "PayPay",
	PaymentAlipay: "支付宝",
}

// Slip records one table's sale. Amounts are whole yen.
type Slip struct {
	ID            uuid.UUID     `json:"id"`
	BusinessDate  string        `json:"business_date"`
	TableName     string        `json:"table_name,omitempty"`
	People        int           `json:"people"`
	Amount        int           `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     string        `json:"created_at"` // "YYYY-MM-DD HH:MM"
}

// ClockTime returns the HH:MM portion of the creation timestamp for display.
func (s Slip) ClockTime() string {
	if len(s.CreatedAt) >= 16 {
		return s.CreatedAt[11:16]
	}
	return ""
}

// CreateSlipRequest is the payload for recording a slip. People and amount
// arrive as strings straight from form input; anything unparseable is
// recorded as 0 rather than rejected.
type CreateSlipRequest struct {
	TableName     string `json:"table,omitempty"`
	People        string `json:"people"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method,omitempty"`
	BusinessDate  string `json:"business_date,omitempty"`
}

// UpdateSlipRequest is the payload for editing a slip. The business date and
// payment method are immutable after creation.
type UpdateSlipRequest struct {
	TableName string `json:"table,omitempty"`
	People    string `json:"people"`
	Amount    string `json:"amount"`
}
