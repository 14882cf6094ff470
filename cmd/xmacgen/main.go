// xmacgen 按 OUI 与设备标识范围批量生成 EUI-48 MAC 地址，每行输出一个。
//
// 用法:
//
//	xmacgen [选项]
//
// 选项:
//
//	-o, --oui         6 位十六进制 OUI，可含分隔符（默认随机，高两个字节为 00）
//	-r, --start       起始设备标识，6 位十六进制（默认随机 [00, ff]）
//	-s, --stop        结束设备标识（不包含），必须与 --start 一起使用
//	-t, --total       生成数量（默认 1，指定 --stop 时忽略）
//	-d, --delimiter   字节分隔符（默认 ":"）
//	-c, --case        lower 或 upper（默认 lower）
//	--config          YAML/JSON 配置文件，命令行显式给出的选项优先
//	--log-level       日志级别 debug/info/warn/error（默认 warn）
//	--log-format      日志格式 text/json（默认 text）
//	--log-file        日志文件路径（按大小轮转，默认输出到 stderr）
//
// 退出码:
//
//	0: 生成成功
//	1: 输入校验失败或输出失败
//	2: 参数错误（stop 未与 start 一起使用、未知选项、无效日志配置等）
//	130: 被信号中断
//
// 示例:
//
//	xmacgen -o ab-cd-ef -r 000001 -s 000003 -d - -c upper
//	xmacgen -o 00:11:22 -t 100 > macs.txt
//	xmacgen --config fixtures.yaml --log-level debug
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags "-X main.Version=..." 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	return execute(ctx, os.Args, os.Stdout, os.Stderr)
}

// execute 运行命令并把错误映射为退出码。
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xmacgen",
		Usage:     "面向测试的 EUI-48 MAC 地址批量生成器",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     createFlags(),
		Action:    generateAction,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{msg: err.Error(), err: err}
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 execute 统一处理退出码
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func createFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagOUI,
			Aliases: []string{"o"},
			Usage:   "6 位十六进制 OUI（默认随机）",
		},
		&cli.StringFlag{
			Name:    flagStart,
			Aliases: []string{"r"},
			Usage:   "起始设备标识（默认随机）",
		},
		&cli.StringFlag{
			Name:    flagStop,
			Aliases: []string{"s"},
			Usage:   "结束设备标识（不包含），需与 --start 一起使用",
		},
		&cli.StringFlag{
			Name:    flagTotal,
			Aliases: []string{"t"},
			Usage:   "生成数量（整数）",
			Value:   "1",
		},
		&cli.StringFlag{
			Name:    flagDelimiter,
			Aliases: []string{"d"},
			Usage:   "字节分隔符",
			Value:   ":",
		},
		&cli.StringFlag{
			Name:    flagCase,
			Aliases: []string{"c"},
			Usage:   "输出大小写：lower 或 upper",
			Value:   "lower",
		},
		&cli.StringFlag{
			Name:  flagConfig,
			Usage: "YAML/JSON 配置文件路径",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "日志级别：debug/info/warn/error",
			Value: "warn",
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "日志格式：text/json",
			Value: "text",
		},
		&cli.StringFlag{
			Name:  flagLogFile,
			Usage: "日志文件路径（默认输出到 stderr）",
		},
	}
}
