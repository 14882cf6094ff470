// Package xconf 基于 koanf 加载 YAML/JSON 配置。
//
// xconf 定位为最小化配置加载器，只负责文件/字节数据的加载与反序列化，
// 不负责必选字段校验与默认值注入，这些由调用方在 Unmarshal 后处理。
//
//   - 工厂函数：New（按扩展名识别格式）, NewFromBytes（显式指定格式）
//   - Client() 暴露底层 koanf 实例
//   - Unmarshal 使用 mapstructure，默认允许弱类型转换
//
// 支持的格式：YAML（.yaml, .yml）与 JSON（.json）。
package xconf
