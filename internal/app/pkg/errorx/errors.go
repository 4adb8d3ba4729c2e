package errorx

import (
	"errors"
	"fmt"
)

// Kind 错误分类（流水线各阶段的失败类型）
type Kind int

const (
	KindUnknown Kind = iota
	// KindAcquisition 数据获取失败（网络/认证/传输），不重试
	KindAcquisition
	// KindMissingSource 获取完成后仍缺少输入表/输入文件
	KindMissingSource
	// KindPersistence 输出文件/目录不可写
	KindPersistence
	// KindModelUnavailable 模型未加载，服务不可用
	KindModelUnavailable
	// KindValidation 请求参数或记录格式非法
	KindValidation
)

// String 返回分类名称
func (k Kind) String() string {
	switch k {
	case KindAcquisition:
		return "acquisition"
	case KindMissingSource:
		return "missing_source"
	case KindPersistence:
		return "persistence"
	case KindModelUnavailable:
		return "model_unavailable"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error 流水线错误结构（带分类，调用方按 Kind 分支处理）
type Error struct {
	Kind    Kind   `json:"kind"`
	Op      string `json:"op"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap 返回底层错误
func (e *Error) Unwrap() error {
	return e.Err
}

// New 创建流水线错误
func New(kind Kind, op string, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap 包装底层错误
func Wrap(kind Kind, op string, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf 提取错误分类（非流水线错误返回 KindUnknown）
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind 判断错误是否属于指定分类
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
