package xmacgen

import (
	"fmt"
	"strconv"
	"strings"
)

// tripleWidth 3 字节值的十六进制位数。
const tripleWidth = 6

// IntToHex 将非负整数格式化为小写、左补零的 6 位十六进制字符串。
//
//	IntToHex(255) // "0000ff"
//
// 大于 0xffffff 的值按实际位数输出，不截断。负数返回 [ErrInvalidArgument]。
func IntToHex(v int) (string, error) {
	if v < 0 {
		return "", fmt.Errorf("%w: negative value %d", ErrInvalidArgument, v)
	}
	s := strconv.FormatInt(int64(v), 16)
	if len(s) < tripleWidth {
		s = strings.Repeat("0", tripleWidth-len(s)) + s
	}
	return s, nil
}

// HexToInt 将十六进制字符串（大小写不敏感）解析为整数。
//
//	HexToInt("0000ff") // 255
//
// 非法十六进制或超出 int 范围时返回 [ErrInvalidArgument]。
func HexToInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 16, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not hex: %w", ErrInvalidArgument, s, err)
	}
	return int(v), nil
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

// isHex 报告 s 是否为非空的纯十六进制字符串。
func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if hexValue(s[i]) < 0 {
			return false
		}
	}
	return true
}
