package xmacgen

import (
	"iter"
	"log/slog"
)

// Config 是一次生成的解析结果，只能通过 [Resolve] 创建。
//
// Config 是不可变值类型，设备标识范围为半开区间 [Start, Stop)。
// 零值 Config 不产出任何地址。
type Config struct {
	oui       string
	start     int
	stop      int
	delimiter string
	letter    Case
}

// OUI 返回规范化后的 6 位十六进制 OUI（不含分隔符）。
func (c Config) OUI() string { return c.oui }

// Start 返回起始设备标识（包含）。
func (c Config) Start() int { return c.start }

// Stop 返回结束设备标识（不包含）。
func (c Config) Stop() int { return c.stop }

// Delimiter 返回字节分隔符。
func (c Config) Delimiter() string { return c.delimiter }

// Case 返回输出大小写。
func (c Config) Case() Case { return c.letter }

// Len 返回将产出的地址数量。Stop <= Start 时为 0。
func (c Config) Len() int {
	return max(c.stop-c.start, 0)
}

// LogValue 实现 [slog.LogValuer]。
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("oui", c.oui),
		slog.Int("start", c.start),
		slog.Int("stop", c.stop),
		slog.Int("count", c.Len()),
		slog.String("case", string(c.letter)),
	)
}

// Addresses 返回按设备标识升序产出地址的迭代器。
//
// 地址按需逐个生成，提前 break 即停止计算。迭代器针对同一 Config，
// 重复 range 会重放相同的地址；需要新的随机 OUI/起始值时重新调用 [Resolve]。
func (c Config) Addresses() iter.Seq[string] {
	return func(yield func(string) bool) {
		prefix := c.prefix()
		for d := c.start; d < c.stop; d++ {
			if !yield(c.format(prefix, d)) {
				return
			}
		}
	}
}

// Stream 返回拉取式的地址流，耗尽后不可重启。
func (c Config) Stream() *Stream {
	return &Stream{
		cfg:    c,
		prefix: c.prefix(),
		next:   c.start,
	}
}

// prefix 返回带分隔符的 OUI 部分。
func (c Config) prefix() string {
	return NormalizeOUI(c.oui, c.delimiter)
}

// format 拼接 OUI 与设备标识并转换大小写。
func (c Config) format(prefix string, d int) string {
	// Resolve 保证 d 落在 [0, DeviceSpace) 内，IntToHex 不会失败
	hex, _ := IntToHex(d) //nolint:errcheck // d 非负
	return c.letter.apply(prefix + c.delimiter + PairHex(hex, c.delimiter))
}

// Stream 拉取式地址流。
//
// 非并发安全，每个消费者应各自调用 [Config.Stream]。
type Stream struct {
	cfg    Config
	prefix string
	next   int
}

// Next 返回下一个地址。流耗尽后始终返回 ("", false)。
func (s *Stream) Next() (string, bool) {
	if s.next >= s.cfg.stop {
		return "", false
	}
	addr := s.cfg.format(s.prefix, s.next)
	s.next++
	return addr, true
}

// Remaining 返回尚未产出的地址数量。
func (s *Stream) Remaining() int {
	return max(s.cfg.stop-s.next, 0)
}

// Generate 解析选项并返回地址迭代器。
//
// 校验失败时返回错误且迭代器为 nil。每次调用都会重新解析，
// 未指定 OUI 或 start 时重新取随机值。
func Generate(opts ...Option) (iter.Seq[string], error) {
	cfg, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.Addresses(), nil
}
