package xmacgen

import "strings"

// DefaultDelimiter 默认的字节分隔符。
const DefaultDelimiter = ":"

// ExtractAlphanumeric 移除 s 中所有非 ASCII 字母、数字的字符。
//
// 用于剥离 ":"、"-"、"."、空白等分隔符：
//
//	ExtractAlphanumeric("aa-bb-cc") // "aabbcc"
//	ExtractAlphanumeric("aa_bb cc") // "aabbcc"
func ExtractAlphanumeric(s string) string {
	// 快路径：已经是纯字母数字时不分配
	clean := true
	for i := range len(s) {
		if !isAlphanumeric(s[i]) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := range len(s) {
		if c := s[i]; isAlphanumeric(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PairHex 将 s 按两字符一组切分，并用 delim 拼接。
//
//	PairHex("abcdef", ":") // "ab:cd:ef"
//
// 奇数长度时末尾落单的字符被丢弃：PairHex("abcde", ":") 返回 "ab:cd"。
func PairHex(s, delim string) string {
	pairs := len(s) / 2
	if pairs == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(pairs*2 + (pairs-1)*len(delim))
	for i := range pairs {
		if i > 0 {
			b.WriteString(delim)
		}
		b.WriteString(s[i*2 : i*2+2])
	}
	return b.String()
}

// NormalizeOUI 去除 oui 中的分隔符后按 delim 重新分组。
//
//	NormalizeOUI("aa-bb-cc", ":") // "aa:bb:cc"
func NormalizeOUI(oui, delim string) string {
	return PairHex(ExtractAlphanumeric(oui), delim)
}

func isAlphanumeric(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
