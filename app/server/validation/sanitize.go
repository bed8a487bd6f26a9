package validation

import "github.com/microcosm-cc/bluemonday"

// UGCPolicy 允许常见的排版标签，去掉 <script>、事件属性和 javascript: 链接
var htmlSanitizer = bluemonday.UGCPolicy()

// Sanitize 清理富文本内容，对已经安全的内容再次调用不会产生变化
func Sanitize(html string) string {
	return htmlSanitizer.Sanitize(html)
}
