package usecase

import (
	"errors"
	"fmt"
	"time"
)

type HTTPError struct {
	Status  int
	Message string
	// 500のときだけ使う内部詳細。prodではhandler側で出さない。
	Detail string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func NewHTTPErrorWithDetail(status int, message string, cause error) error {
	he := &HTTPError{
		Status:  status,
		Message: message,
	}
	if cause != nil {
		he.Detail = cause.Error()
	}
	return he
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 時刻・ID生成はusecaseに直接書かず注入する（テストで固定できるように）
type Clock interface {
	Now() time.Time
}

// アカウントID（uuid）
type IDGenerator interface {
	NewID() string
}

// 注文ID（ORD+ミリ秒epoch+乱数0-999）。重複しうる前提で扱う。
type OrderIDGenerator interface {
	NewOrderID() string
}
