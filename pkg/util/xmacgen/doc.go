// Package xmacgen 按 OUI 与设备标识范围批量生成 EUI-48 MAC 地址。
//
// 面向测试场景：网络仿真、夹具数据等需要一批语法合法 MAC 地址的地方。
// 生成过程分为四个阶段，数据只向下流动：
//
//   - 规范化：[ExtractAlphanumeric] 去除分隔符，[PairHex] 按两字符一组重新拼接
//   - 校验：[IsValidOctetTriple] 要求恰好 6 位十六进制，[IsValidMAC] 只要求可解析
//   - 范围解析：[Resolve] 把 oui/start/stop/total 解析为不可变的 [Config]
//   - 序列生成：[Config.Addresses] 与 [Config.Stream] 惰性产出地址字符串
//
// # 快速示例
//
//	seq, err := xmacgen.Generate(
//	    xmacgen.WithOUI("ab-cd-ef"),
//	    xmacgen.WithStart("000001"),
//	    xmacgen.WithStop("000003"),
//	    xmacgen.WithDelimiter("-"),
//	    xmacgen.WithCase(xmacgen.CaseUpper),
//	)
//	if err != nil {
//	    return err
//	}
//	for addr := range seq {
//	    fmt.Println(addr) // AB-CD-EF-00-00-01, AB-CD-EF-00-00-02
//	}
//
// # 范围语义
//
// 设备标识范围为半开区间 [Start, Stop)：
//
//   - 显式 start + stop：Stop 取 stop 的数值，start 必须同时给出
//   - 显式 start + total：Stop = Start + total
//   - 未给出 start：Start 随机取 [0, 255]，Stop = Start + total
//
// Stop <= Start 时生成空序列而非报错。Start + total 超出 24 位设备标识空间时
// 返回 [ErrInvalidTotal]，不会产生超过 6 位的设备标识。
//
// 未给出 OUI 时随机取 [0, 255] 并格式化为 6 位十六进制，即随机 OUI 的高两个
// 字节恒为 00。
//
// # 校验与错误
//
// 所有校验在产出第一个地址之前完成，失败时不输出任何地址。
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xmacgen.Resolve(xmacgen.WithStop("000010"))
//	if errors.Is(err, xmacgen.ErrUsage) {
//	    // stop 必须与 start 一起使用
//	}
//
// [IsValidOctetTriple] 与 [IsValidMAC] 的严格程度不同：前者要求长度恰好为 6，
// 后者只要求去除分隔符后为十六进制。两者均吞掉所有解析错误并返回 false。
//
// # 并发
//
// [Resolve] 每次调用分配独立的 [Config]，Config 为只读值，可在多个 goroutine
// 间共享并各自迭代。[Stream] 持有游标，不可并发使用。
package xmacgen
