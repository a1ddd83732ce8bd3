package shared

import "fmt"

// ===========================
// DomainError 結構
// ===========================

// ErrorCode 錯誤代碼類型
//
// 各 bounded context 在自己的 errors.go 中定義代碼常量，
// 代碼字串全域唯一（加上 context 前綴，例如 SPIN_QUOTA_EXCEEDED）
type ErrorCode string

// DomainError 領域錯誤
//
// 設計原則：
// 1. 不使用裸字串錯誤，包含結構化的錯誤代碼（用於 HTTP 狀態碼映射）
// 2. 支持上下文信息（用於調試和日誌）
// 3. 不可變性（WithContext 返回新實例）
// 4. errors.Is 以 Code 判等，上下文不影響錯誤身份
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// NewDomainError 創建領域錯誤（各 context 用於定義預設錯誤實例）
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
//
// 使用範例：
//   return ErrQuotaExceeded.WithContext("member_id", id.String(), "used_today", used)
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（用於錯誤類型判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
