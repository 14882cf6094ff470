// Package xrotate 提供基于 lumberjack 的日志文件按大小轮转。
//
// [Rotator] 是 io.WriteCloser 的超集，可直接作为 xlog 的输出目标：
//
//	r, err := xrotate.NewLumberjack("/var/log/xmacgen/run.log",
//	    xrotate.WithMaxSize(50),
//	    xrotate.WithMaxBackups(3),
//	)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// 父目录不存在时自动创建（权限 0750）。所有实现并发安全。
package xrotate
