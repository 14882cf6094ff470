package main

import (
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xmacgen/pkg/config/xconf"
	"github.com/omeyang/xmacgen/pkg/util/xmacgen"
)

// 命令行选项名。
const (
	flagOUI       = "oui"
	flagStart     = "start"
	flagStop      = "stop"
	flagTotal     = "total"
	flagDelimiter = "delimiter"
	flagCase      = "case"
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
)

// profile 配置文件内容。
//
// 十六进制值需加引号（如 start: "000001"），否则 YAML 会将其解析为整数。
// 指针字段区分"未配置"与"配置为空字符串"。
type profile struct {
	OUI       string  `koanf:"oui"`
	Start     string  `koanf:"start"`
	Stop      string  `koanf:"stop"`
	Total     any     `koanf:"total"`
	Delimiter *string `koanf:"delimiter"`
	Case      string  `koanf:"case"`
	Log       struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
	} `koanf:"log"`
}

// loadProfile 加载配置文件，path 为空时返回空配置。
func loadProfile(path string) (profile, error) {
	var p profile
	if path == "" {
		return p, nil
	}
	cfg, err := xconf.New(path)
	if err != nil {
		return p, err
	}
	if err := cfg.Unmarshal("", &p); err != nil {
		return p, err
	}
	return p, nil
}

// settings 合并后的运行参数。
type settings struct {
	oui       string
	start     string
	stop      string
	total     any
	delimiter string
	letter    string
	logLevel  string
	logFormat string
	logFile   string
}

// mergeSettings 按"显式命令行 > 配置文件 > 命令行默认值"合并参数。
func mergeSettings(cmd *cli.Command, p profile) settings {
	pick := func(name, fromProfile string) string {
		if cmd.IsSet(name) || fromProfile == "" {
			return cmd.String(name)
		}
		return fromProfile
	}

	s := settings{
		oui:       pick(flagOUI, p.OUI),
		start:     pick(flagStart, p.Start),
		stop:      pick(flagStop, p.Stop),
		total:     cmd.String(flagTotal),
		delimiter: cmd.String(flagDelimiter),
		letter:    pick(flagCase, p.Case),
		logLevel:  pick(flagLogLevel, p.Log.Level),
		logFormat: pick(flagLogFormat, p.Log.Format),
		logFile:   pick(flagLogFile, p.Log.File),
	}
	// total 保留配置文件中的原始类型，交给 xmacgen 按类型转换
	if !cmd.IsSet(flagTotal) && p.Total != nil {
		s.total = p.Total
	}
	if !cmd.IsSet(flagDelimiter) && p.Delimiter != nil {
		s.delimiter = *p.Delimiter
	}
	return s
}

// options 转换为 xmacgen 解析选项。
func (s settings) options() []xmacgen.Option {
	return []xmacgen.Option{
		xmacgen.WithOUI(s.oui),
		xmacgen.WithStart(s.start),
		xmacgen.WithStop(s.stop),
		xmacgen.WithTotal(s.total),
		xmacgen.WithDelimiter(s.delimiter),
		xmacgen.WithCase(xmacgen.Case(s.letter)),
	}
}
