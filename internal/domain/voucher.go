package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const referencePrefix = "OXXO"

// VoucherRequest — запрос на платёжный ваучер; живёт только в рамках одного вызова.
type VoucherRequest struct {
	PayeeID string          `json:"payeeId"`
	Amount  decimal.Decimal `json:"amount"`
}

// Validate проверяет обязательность полей до начала какой-либо работы.
func (r VoucherRequest) Validate() error {
	if r.PayeeID == "" || !r.Amount.IsPositive() {
		return ErrValidation
	}
	return nil
}

// Reference — строка, кодируемая в штрихкод; уникальна для пары (получатель, сумма).
func (r VoucherRequest) Reference() string {
	return fmt.Sprintf("%s-%s-%s", referencePrefix, r.PayeeID, r.Amount.String())
}
