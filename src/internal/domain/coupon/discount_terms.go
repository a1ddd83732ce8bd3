package coupon

import (
	"github.com/shopspring/decimal"
)

// ===========================
// DiscountKind 折扣種類
// ===========================

// DiscountKind 折扣種類
//
// 與獎項種類的關係：優惠券只會由「會中獎」的獎項鑄造，
// 因此沒有 NO_REWARD，在類型層面排除「銘謝惠顧優惠券」這種非法狀態
type DiscountKind string

// 折扣種類常量
const (
	DiscountPercent      DiscountKind = "PERCENT"       // 百分比折扣
	DiscountFixedAmount  DiscountKind = "FIXED_AMOUNT"  // 固定金額折扣
	DiscountFreeShipping DiscountKind = "FREE_SHIPPING" // 免運費
)

// DiscountKindFromString 從字串解析折扣種類
func DiscountKindFromString(value string) (DiscountKind, error) {
	switch DiscountKind(value) {
	case DiscountPercent, DiscountFixedAmount, DiscountFreeShipping:
		return DiscountKind(value), nil
	default:
		return "", ErrInvalidTerms.WithContext(
			"reason", "unknown discount kind",
			"kind", value,
		)
	}
}

// ===========================
// DiscountTerms 折扣條款值對象
// ===========================

// DiscountTerms 折扣條款值對象
//
// 在鑄造當下從獎項複製而來，之後編輯獎項不會回溯改變已發出的優惠券。
// 設計原則：值對象不可變、自我驗證
type DiscountTerms struct {
	kind           DiscountKind
	value          decimal.Decimal
	maxDiscount    *decimal.Decimal
	minOrderAmount *decimal.Decimal
}

// NewDiscountTerms 建構折扣條款
//
// 建構約束：
// - 種類必須有效
// - value >= 0；maxDiscount / minOrderAmount 若設定則 >= 0
func NewDiscountTerms(
	kind DiscountKind,
	value decimal.Decimal,
	maxDiscount, minOrderAmount *decimal.Decimal,
) (DiscountTerms, error) {
	if _, err := DiscountKindFromString(string(kind)); err != nil {
		return DiscountTerms{}, err
	}
	if value.IsNegative() {
		return DiscountTerms{}, ErrInvalidTerms.WithContext(
			"reason", "value cannot be negative",
			"value", value.String(),
		)
	}
	if maxDiscount != nil && maxDiscount.IsNegative() {
		return DiscountTerms{}, ErrInvalidTerms.WithContext(
			"reason", "maxDiscount cannot be negative",
			"max_discount", maxDiscount.String(),
		)
	}
	if minOrderAmount != nil && minOrderAmount.IsNegative() {
		return DiscountTerms{}, ErrInvalidTerms.WithContext(
			"reason", "minOrderAmount cannot be negative",
			"min_order_amount", minOrderAmount.String(),
		)
	}

	return DiscountTerms{
		kind:           kind,
		value:          value,
		maxDiscount:    maxDiscount,
		minOrderAmount: minOrderAmount,
	}, nil
}

// Kind 獲取折扣種類
func (t DiscountTerms) Kind() DiscountKind { return t.kind }

// Value 獲取折扣值（百分比或金額，依種類解讀）
func (t DiscountTerms) Value() decimal.Decimal { return t.value }

// MaxDiscount 獲取折扣上限（nil 表示無上限）
func (t DiscountTerms) MaxDiscount() *decimal.Decimal { return t.maxDiscount }

// MinOrderAmount 獲取最低訂單金額門檻（nil 表示無門檻）
func (t DiscountTerms) MinOrderAmount() *decimal.Decimal { return t.minOrderAmount }

// ===========================
// Discount 折扣計算結果
// ===========================

// Discount 折扣計算結果
//
// FreeShipping 為免運費的哨兵值：表示「免除運費」而非小計折扣，
// Amount 此時為零，由訂單協作方負責實際免除運費
type Discount struct {
	Amount       decimal.Decimal
	FreeShipping bool
}

// DiscountFor 計算指定訂單小計可得的折扣
//
// 業務規則：
// - 訂單小計低於門檻 → ErrBelowMinOrder
// - PERCENT: min(subtotal × value / 100, maxDiscount)（無上限時不封頂）
// - FIXED_AMOUNT: min(value, subtotal)（折扣不超過小計）
// - FREE_SHIPPING: 金額為零 + FreeShipping 哨兵
func (t DiscountTerms) DiscountFor(subtotal decimal.Decimal) (Discount, error) {
	if t.minOrderAmount != nil && subtotal.LessThan(*t.minOrderAmount) {
		return Discount{}, ErrBelowMinOrder.WithContext(
			"subtotal", subtotal.String(),
			"min_order_amount", t.minOrderAmount.String(),
		)
	}

	switch t.kind {
	case DiscountPercent:
		amount := subtotal.Mul(t.value).Div(decimal.NewFromInt(100))
		if t.maxDiscount != nil && amount.GreaterThan(*t.maxDiscount) {
			amount = *t.maxDiscount
		}
		return Discount{Amount: amount}, nil

	case DiscountFixedAmount:
		amount := t.value
		if amount.GreaterThan(subtotal) {
			amount = subtotal
		}
		return Discount{Amount: amount}, nil

	case DiscountFreeShipping:
		return Discount{Amount: decimal.Zero, FreeShipping: true}, nil

	default:
		// 建構函數已驗證種類，此分支不可達
		return Discount{}, ErrInvalidTerms.WithContext("kind", string(t.kind))
	}
}
