package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xmacgen/pkg/observability/xlog"
	"github.com/omeyang/xmacgen/pkg/util/xmacgen"
)

// cancelCheckInterval 每输出多少个地址检查一次 context 是否取消。
const cancelCheckInterval = 1024

// generateAction 解析参数、生成地址并逐行写入 stdout。
func generateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return &usageError{msg: fmt.Sprintf("不接受位置参数: %v", cmd.Args().Slice())}
	}

	p, err := loadProfile(cmd.String(flagConfig))
	if err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}
	s := mergeSettings(cmd, p)

	logger, cleanup, err := xlog.New().
		SetOutput(cmd.Root().ErrWriter).
		SetLevelString(s.logLevel).
		SetFormat(s.logFormat).
		SetRotation(s.logFile).
		Build()
	if err != nil {
		return &usageError{msg: fmt.Sprintf("日志配置无效: %v", err), err: err}
	}
	defer func() { _ = cleanup() }() //nolint:errcheck // 退出前尽力关闭日志文件

	cfg, err := xmacgen.Resolve(s.options()...)
	if err != nil {
		logger.Debug(ctx, "参数校验失败", slog.String("error", err.Error()))
		if errors.Is(err, xmacgen.ErrUsage) {
			return &usageError{msg: err.Error(), err: err}
		}
		return err
	}
	logger.Debug(ctx, "配置解析完成", slog.Any("config", cfg))

	n, err := writeAddresses(ctx, cmd.Root().Writer, cfg)
	if err != nil {
		logger.Warn(ctx, "生成中断", slog.Int("written", n), slog.String("error", err.Error()))
		return err
	}
	logger.Info(ctx, "生成完成", slog.Int("count", n))
	return nil
}

// writeAddresses 流式写出地址，返回已写出的数量。
func writeAddresses(ctx context.Context, w io.Writer, cfg xmacgen.Config) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for addr := range cfg.Addresses() {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				_ = bw.Flush() //nolint:errcheck // 已取消，优先返回取消原因
				return n, err
			}
		}
		if _, err := bw.WriteString(addr); err != nil {
			return n, fmt.Errorf("写入输出失败: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("写入输出失败: %w", err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("写入输出失败: %w", err)
	}
	return n, nil
}
