package xmacgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DeviceSpace 设备标识（MAC 地址后 3 字节）的取值空间大小。
const DeviceSpace = 1 << 24

// randomSpan 随机 OUI 与随机起始标识的取值范围 [0, randomSpan)。
const randomSpan = 256

// Case 定义生成地址的大小写。
type Case string

const (
	// CaseLower 小写输出：aa:bb:cc:00:00:01
	CaseLower Case = "lower"
	// CaseUpper 大写输出：AA:BB:CC:00:00:01
	CaseUpper Case = "upper"
)

// ParseCase 解析大小写名称（大小写不敏感，自动 TrimSpace）。
// 不支持的名称返回 [ErrUnsupportedOperation]。
func ParseCase(s string) (Case, error) {
	switch c := Case(strings.ToLower(strings.TrimSpace(s))); c {
	case CaseLower, CaseUpper:
		return c, nil
	default:
		return "", fmt.Errorf("%w: case %q", ErrUnsupportedOperation, s)
	}
}

func (c Case) apply(s string) string {
	if c == CaseUpper {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}

// options 定义一次解析的原始输入。
// oui/start/stop 为空字符串表示未提供。
type options struct {
	oui       string
	start     string
	stop      string
	total     any
	delimiter string
	letter    Case
	intN      func(n int) int
}

// Option 定义解析选项函数类型。
type Option func(*options)

// defaultOptions 返回默认选项：生成 1 个地址，冒号分隔，小写。
func defaultOptions() *options {
	return &options{
		total:     1,
		delimiter: DefaultDelimiter,
		letter:    CaseLower,
		intN:      rand.IntN,
	}
}

// WithOUI 设置 6 位十六进制 OUI，允许包含分隔符（如 "ab-cd-ef"）。
// 未设置时随机生成。
func WithOUI(oui string) Option {
	return func(o *options) {
		o.oui = oui
	}
}

// WithStart 设置起始设备标识（6 位十六进制，允许分隔符）。
// 未设置时随机取 [0, 255]。
func WithStart(start string) Option {
	return func(o *options) {
		o.start = start
	}
}

// WithStop 设置结束设备标识（不包含），必须与 [WithStart] 一起使用。
// 设置后忽略 total。
func WithStop(stop string) Option {
	return func(o *options) {
		o.stop = stop
	}
}

// WithTotal 设置生成数量，默认 1。
//
// 接受整数、整数值浮点数以及十进制字符串；其余类型在解析时返回
// [ErrUnsupportedOperation]。传入 nil 表示缺失，返回 [ErrInvalidTotal]。
func WithTotal(total any) Option {
	return func(o *options) {
		o.total = total
	}
}

// WithDelimiter 设置字节分隔符，默认 ":"。空字符串表示无分隔符。
func WithDelimiter(delim string) Option {
	return func(o *options) {
		o.delimiter = delim
	}
}

// WithCase 设置输出大小写，默认 [CaseLower]。
func WithCase(c Case) Option {
	return func(o *options) {
		o.letter = c
	}
}

// WithRandom 替换随机数来源，fn(n) 需返回 [0, n) 内的整数。
// 默认使用 math/rand/v2 的 IntN。nil 被忽略。
func WithRandom(fn func(n int) int) Option {
	return func(o *options) {
		if fn != nil {
			o.intN = fn
		}
	}
}

// Resolve 校验输入并解析出不可变的 [Config]。
//
// 解析顺序固定为 OUI、start、stop：stop 的校验依赖 start 是否由调用方显式给出。
// 任意一步失败立即返回，不会产出任何地址。
func Resolve(opts ...Option) (Config, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	oui, err := resolveOUI(o)
	if err != nil {
		return Config{}, err
	}

	start, err := resolveStart(o)
	if err != nil {
		return Config{}, err
	}

	stop, err := resolveStop(o, start)
	if err != nil {
		return Config{}, err
	}

	letter, err := ParseCase(string(o.letter))
	if err != nil {
		return Config{}, err
	}

	return Config{
		oui:       oui,
		start:     start,
		stop:      stop,
		delimiter: o.delimiter,
		letter:    letter,
	}, nil
}

func resolveOUI(o *options) (string, error) {
	if o.oui == "" {
		// 随机值只覆盖 OUI 的最后一个字节
		return IntToHex(o.intN(randomSpan))
	}
	oui := ExtractAlphanumeric(o.oui)
	if !IsValidOctetTriple(oui) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOUI, o.oui)
	}
	return oui, nil
}

func resolveStart(o *options) (int, error) {
	if o.start == "" {
		return o.intN(randomSpan), nil
	}
	start := ExtractAlphanumeric(o.start)
	if !IsValidOctetTriple(start) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStart, o.start)
	}
	return HexToInt(start)
}

func resolveStop(o *options, start int) (int, error) {
	if o.stop == "" {
		total, err := coerceTotal(o.total)
		if err != nil {
			return 0, err
		}
		if total > DeviceSpace-start {
			return 0, fmt.Errorf("%w: %d addresses from %06x exceed the device identifier space",
				ErrInvalidTotal, total, start)
		}
		return start + total, nil
	}

	// 先校验 stop 自身格式，再检查 start 是否显式给出
	stop := ExtractAlphanumeric(o.stop)
	if !IsValidOctetTriple(stop) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStop, o.stop)
	}
	if o.start == "" {
		return 0, ErrUsage
	}
	return HexToInt(stop)
}

// coerceTotal 按类型把 total 转为正整数。
//
// 两级错误：类型没有数值语义返回 ErrUnsupportedOperation，
// 有数值语义但不合法（缺失、非正、非整数、过大）返回 ErrInvalidTotal。
func coerceTotal(v any) (int, error) {
	var n int64
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: missing", ErrInvalidTotal)
	case int:
		n = int64(t)
	case int8:
		n = int64(t)
	case int16:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case uint:
		return coerceUnsigned(uint64(t))
	case uint8:
		n = int64(t)
	case uint16:
		n = int64(t)
	case uint32:
		n = int64(t)
	case uint64:
		return coerceUnsigned(t)
	case float32:
		return coerceFloat(float64(t))
	case float64:
		return coerceFloat(t)
	case string:
		return coerceString(t)
	default:
		return 0, fmt.Errorf("%w: total of type %T has no numeric value", ErrUnsupportedOperation, v)
	}
	return checkTotal(n)
}

func coerceUnsigned(u uint64) (int, error) {
	if u > DeviceSpace {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrInvalidTotal, u, DeviceSpace)
	}
	return checkTotal(int64(u))
}

func coerceFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidTotal, f)
	}
	if f > DeviceSpace {
		return 0, fmt.Errorf("%w: %v exceeds %d", ErrInvalidTotal, f, DeviceSpace)
	}
	return checkTotal(int64(f))
}

func coerceString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: missing", ErrInvalidTotal)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return checkTotal(n)
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTotal, s)
	}
	if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
		return coerceFloat(f)
	}
	return 0, fmt.Errorf("%w: total %q has no numeric value", ErrUnsupportedOperation, s)
}

func checkTotal(n int64) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTotal, n)
	}
	if n > DeviceSpace {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrInvalidTotal, n, DeviceSpace)
	}
	return int(n), nil
}
