// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmacgen: EUI-48 MAC 地址范围生成，OUI 规范化、十六进制转换、流式输出
package util
