package textutil

import "strings"

// DefaultAbbreviateLen 列表页摘要默认长度
const DefaultAbbreviateLen = 100

// Abbreviate 将文本截断到 max 个字符以内，回退到最后一个完整单词边界并追加 "..."。
// 前 max 个字符内没有空格时整段前缀视为一个单词原样保留。
func Abbreviate(text string, max int) string {
    if max < 0 {
        max = 0
    }
    runes := []rune(text)
    if len(runes) <= max {
        return text
    }

    capped := strings.TrimRight(string(runes[:max]), " ")
    idx := strings.LastIndexByte(capped, ' ')
    if idx < 0 {
        // 无空格：整个前缀算一个单词
        return capped + "..."
    }
    return capped[:idx] + "..."
}
