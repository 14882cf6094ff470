package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profile 测试用配置结构体
type profile struct {
	OUI       string `koanf:"oui"`
	Total     int    `koanf:"total"`
	Delimiter string `koanf:"delimiter"`
	Log       struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

const testYAMLContent = `
oui: "ab:cd:ef"
total: 4
delimiter: "-"
log:
  level: debug
`

const testJSONContent = `{
  "oui": "ab:cd:ef",
  "total": 4,
  "delimiter": "-",
  "log": {"level": "debug"}
}`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		file    string
		content string
		format  Format
	}{
		{"profile.yaml", testYAMLContent, FormatYAML},
		{"profile.yml", testYAMLContent, FormatYAML},
		{"profile.json", testJSONContent, FormatJSON},
		{"PROFILE.JSON", testJSONContent, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := createTempFile(t, tt.file, tt.content)

			cfg, err := New(path)
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path())
			assert.Equal(t, tt.format, cfg.Format())

			assert.Equal(t, "ab:cd:ef", cfg.Client().String("oui"))
			assert.Equal(t, 4, cfg.Client().Int("total"))
			assert.Equal(t, "debug", cfg.Client().String("log.level"))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New("profile.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)

	path := createTempFile(t, "broken.json", `{"oui": `)
	_, err = New(path)
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testYAMLContent), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())

	var p profile
	require.NoError(t, cfg.Unmarshal("", &p))
	assert.Equal(t, "ab:cd:ef", p.OUI)
	assert.Equal(t, 4, p.Total)
	assert.Equal(t, "-", p.Delimiter)
	assert.Equal(t, "debug", p.Log.Level)
}

func TestNewFromBytes_Empty(t *testing.T) {
	cfg, err := NewFromBytes(nil, FormatJSON)
	require.NoError(t, err)

	var p profile
	require.NoError(t, cfg.Unmarshal("", &p))
	assert.Zero(t, p)
}

func TestNewFromBytes_UnsupportedFormat(t *testing.T) {
	cfg, err := NewFromBytes([]byte("a = 1"), Format("toml"))
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestUnmarshal_Path(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testJSONContent), FormatJSON)
	require.NoError(t, err)

	var log struct {
		Level string `koanf:"level"`
	}
	require.NoError(t, cfg.Unmarshal("log", &log))
	assert.Equal(t, "debug", log.Level)
}

func TestUnmarshal_Failure(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`total: [1, 2]`), FormatYAML)
	require.NoError(t, err)

	var p profile
	assert.ErrorIs(t, cfg.Unmarshal("", &p), ErrUnmarshalFailed)
}

func TestOptions(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testYAMLContent), FormatYAML, WithDelim("/"), WithTag("json"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Client().String("log/level"))

	var p struct {
		OUI string `json:"oui"`
	}
	require.NoError(t, cfg.Unmarshal("", &p))
	assert.Equal(t, "ab:cd:ef", p.OUI)
}
