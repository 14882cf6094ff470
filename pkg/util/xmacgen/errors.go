package xmacgen

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidOUI 表示 OUI 不是 6 位十六进制值。
	ErrInvalidOUI = errors.New("xmacgen: invalid OUI value")

	// ErrInvalidStart 表示起始设备标识不是 6 位十六进制值。
	ErrInvalidStart = errors.New("xmacgen: invalid value for starting address")

	// ErrInvalidStop 表示结束设备标识不是 6 位十六进制值。
	ErrInvalidStop = errors.New("xmacgen: invalid value for ending address")

	// ErrInvalidTotal 表示数量缺失、非正数、非整数或超出设备标识空间。
	ErrInvalidTotal = errors.New("xmacgen: invalid value for total")

	// ErrUsage 表示 stop 未与 start 一起使用。
	ErrUsage = errors.New("xmacgen: invalid usage, start and stop must be used together")

	// ErrUnsupportedOperation 表示值的类型不具备所需的数值或大小写语义。
	// 与 ErrInvalidTotal 区分：后者值可转为数值但不合法（如负数）。
	ErrUnsupportedOperation = errors.New("xmacgen: unsupported operation")

	// ErrInvalidArgument 表示转换辅助函数收到了形状错误的输入。
	ErrInvalidArgument = errors.New("xmacgen: invalid argument")
)
