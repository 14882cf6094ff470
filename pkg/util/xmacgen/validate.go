package xmacgen

// IsValidOctetTriple 报告 v 是否为合法的 3 字节十六进制字符串。
//
// 要求 v 为 string、长度恰好为 6 且可解析为非负十六进制整数。
// 非字符串（包括 nil）、长度不符或解析失败均返回 false，不会 panic。
//
// 输入不做规范化，调用方需先用 [ExtractAlphanumeric] 去除分隔符。
func IsValidOctetTriple(v any) bool {
	s, ok := v.(string)
	if !ok || len(s) != tripleWidth {
		return false
	}
	n, err := HexToInt(s)
	return err == nil && n >= 0
}

// IsValidMAC 报告 v 去除分隔符后是否为十六进制值。
//
// 与 [IsValidOctetTriple] 不同，这里不校验长度：
//
//	IsValidMAC("ab:cd:ef:12:34:56") // true
//	IsValidMAC("ab:cd")             // true
//	IsValidMAC("xx:yy:zz")          // false
//	IsValidMAC(nil)                 // false
func IsValidMAC(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	// 规范化后不含符号位，逐字符检查即可覆盖任意长度，
	// 避免 strconv 在超长输入上报范围错误。
	return isHex(ExtractAlphanumeric(s))
}
