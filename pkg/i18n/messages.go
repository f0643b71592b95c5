package i18n

import (
	"fmt"
	"os"
	"strings"
)

const (
	MsgCliUsage         = "cliUsage"
	MsgCliShort         = "cliShort"
	MsgCliLong          = "cliLong"
	MsgCliFlagHelp      = "cliFlagHelp"
	MsgCmdDecodeShort   = "cmdDecodeShort"
	MsgCmdEncodeShort   = "cmdEncodeShort"
	MsgCliFlagBorder    = "cliFlagBorder"
	MsgCliFlagModSize   = "cliFlagModSize"
	MsgCliFlagQuietZone = "cliFlagQuietZone"
	MsgCliFlagQRMode    = "cliFlagQRMode"
	MsgCliFlagQRInverse = "cliFlagQRInverse"
	MsgCliFlagPNG       = "cliFlagPNG"
	MsgCliFlagPNGSize   = "cliFlagPNGSize"
	MsgCliEncodeNoText  = "cliEncodeNoText"
	MsgCliUnknownMode   = "cliUnknownMode"
	MsgCliQRFail        = "cliQRFail"
	MsgCliPNGWritten    = "cliPNGWritten"
)

var translations = map[string]map[string]string{
	MsgCliShort: {
		"en": "Decode QR codes rendered as terminal half-block art",
		"zh": "解码终端半块字符渲染的二维码",
	},
	MsgCliLong: {
		"en": "deqr recovers the payload of a QR code that a CLI tool printed into a terminal using Unicode half-block characters, and can render such QR codes itself.",
		"zh": "deqr 从命令行工具用 Unicode 半块字符打印到终端的二维码中恢复内容，也可以自行渲染这类二维码。",
	},
	MsgCliFlagHelp: {
		"en": "Print this message",
		"zh": "打印帮助信息",
	},
	MsgCmdDecodeShort: {
		"en": "Extract and decode a half-block QR rendering from text",
		"zh": "从文本中提取并解码半块字符二维码",
	},
	MsgCmdEncodeShort: {
		"en": "Render text as a half-block QR code",
		"zh": "将文本渲染为半块字符二维码",
	},
	MsgCliFlagBorder: {
		"en": "Treat the ▄-run border marker lines as data rows",
		"zh": "将 ▄ 边框行当作数据行处理",
	},
	MsgCliFlagModSize: {
		"en": "Image pixels per QR module",
		"zh": "每个二维码模块的图像像素数",
	},
	MsgCliFlagQuietZone: {
		"en": "Quiet zone width in modules",
		"zh": "静区宽度（模块数）",
	},
	MsgCliFlagQRMode: {
		"en": "QRCode output mode (plain, ansi, none)",
		"zh": "二维码输出模式 (plain, ansi, none)",
	},
	MsgCliFlagQRInverse: {
		"en": "Invert module colors",
		"zh": "反转模块颜色",
	},
	MsgCliFlagPNG: {
		"en": "Also write the QR code to a PNG file",
		"zh": "同时将二维码写入 PNG 文件",
	},
	MsgCliFlagPNGSize: {
		"en": "PNG image size in pixels",
		"zh": "PNG 图像边长（像素）",
	},
	MsgCliEncodeNoText: {
		"en": "encode requires the text to encode as an argument",
		"zh": "encode 需要待编码文本作为参数",
	},
	MsgCliUnknownMode: {
		"en": "unknown qr-mode %q",
		"zh": "未知的 qr-mode %q",
	},
	MsgCliQRFail: {
		"en": "Failed to generate QR code: %v",
		"zh": "生成二维码失败: %v",
	},
	MsgCliPNGWritten: {
		"en": "QR code written to %s",
		"zh": "二维码已写入 %s",
	},
	MsgCliUsage: {
		"en": `deqr %s
Usage:
  deqr <command> [options]

Commands:
  decode [file]          Extract a half-block QR rendering from file (or stdin)
                         and print the decoded payload
  encode <text>          Render text as a half-block QR code
  version                Print build information

Decode options:
      --border           Treat the ▄-run border marker lines as data rows
      --module-size=N    Image pixels per QR module (default 8)
      --quiet-zone=N     Quiet zone width in modules (default 4)

Encode options:
  -Q, --qr-mode=MODE     Output mode: plain, ansi or none
      --inverse          Invert module colors
      --png=PATH         Also write the QR code to a PNG file
      --size=N           PNG image size in pixels (default 256)`,
		"zh": `deqr %s
用法:
  deqr <命令> [选项]

命令:
  decode [file]          从文件（或标准输入）中提取半块字符二维码并打印解码内容
  encode <text>          将文本渲染为半块字符二维码
  version                打印构建信息

decode 选项:
      --border           将 ▄ 边框行当作数据行处理
      --module-size=N    每个模块的图像像素数（默认 8）
      --quiet-zone=N     静区宽度，单位为模块（默认 4）

encode 选项:
  -Q, --qr-mode=MODE     输出模式: plain, ansi 或 none
      --inverse          反转模块颜色
      --png=PATH         同时将二维码写入 PNG 文件
      --size=N           PNG 图像边长（默认 256）`,
	},
}

// Msgf returns the formatted translation.
func Msgf(key string, args ...interface{}) string {
	format := Resolve(key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Resolve returns the translation for key, falling back to en or key itself.
func Resolve(key string) string {
	lang := DetectLang()
	if text := translations[key][lang]; text != "" {
		return text
	}
	if text := translations[key]["en"]; text != "" {
		return text
	}
	return key
}

// DetectLang reads locale env vars and normalizes to "en" / "zh".
func DetectLang() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return normalizeLocale(v)
		}
	}
	return "en"
}

func normalizeLocale(locale string) string {
	lower := strings.ToLower(locale)
	if idx := strings.IndexAny(lower, "._@"); idx >= 0 {
		lower = lower[:idx]
	}
	switch {
	case strings.HasPrefix(lower, "zh"):
		return "zh"
	default:
		return "en"
	}
}
