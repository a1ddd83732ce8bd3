package coupon

import (
	"crypto/rand"
	"fmt"
)

// ===========================
// CodeGenerator 代碼生成領域服務
// ===========================

// MaxCodeAttempts 代碼生成的唯一性重試上限
//
// 業務規則：重試用盡時以 ErrCodePoolSaturated 快速失敗：
// 無界重試在代碼空間飽和時是潛在的可用性風險
const MaxCodeAttempts = 5

// codeAlphabet 代碼字符集
//
// 排除易混淆字符（0/O、1/I/L），顧客需要口頭或手動輸入代碼
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// codeLength 代碼隨機段長度（31^8 ≈ 8.5 × 10^11 組合）
const codeLength = 8

// CodeGenerator 人類可讀優惠券代碼生成服務
//
// 設計原則：
// - 無狀態 Domain Service；唯一性不在此保證，由資料庫唯一索引 +
//   調用者的有界重試迴圈負責（見 Use Case 的鑄造流程）
// - 使用 crypto/rand：代碼可被猜測即可被冒用，不以時間種子的偽隨機生成
type CodeGenerator struct {
	prefix string
}

// NewCodeGenerator 建構代碼生成服務
//
// prefix 為空時使用預設 "LS"（Lucky Spin）
func NewCodeGenerator(prefix string) *CodeGenerator {
	if prefix == "" {
		prefix = "LS"
	}
	return &CodeGenerator{prefix: prefix}
}

// Generate 生成一個候選代碼（格式：PREFIX-XXXXXXXX）
//
// 注意：返回的是「候選」：調用者必須以資料庫唯一索引驗證唯一性，
// 衝突時重新生成，最多 MaxCodeAttempts 次
func (g *CodeGenerator) Generate() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return g.prefix + "-" + string(buf), nil
}
