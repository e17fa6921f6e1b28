package usecase

// Cache key placeholders for omitted inputs.
const (
	keyAllDomains   = "all"
	keyDefaultFocus = "default"
)

const legalPrompt = `請比較以下國家在 %s 類別的勞動法規：

%s

請只回覆以下格式的 JSON：
{
  "summary": "整體比較摘要",
  "key_differences": [
    {"aspect": "方面", "differences": {"國家代碼": "描述"}}
  ],
  "scores": {"國家代碼": 1}
}
scores 為 1 到 10 分，分數越高表示合規難度越高，每個國家都必須評分。`

const recommendationPrompt = `基於以下跨國比較結果，生成聘用策略建議：

比較國家：%s

比較結果：
%s

重點領域權重：
%s

請提供全面的建議，包括：
1. 各國優缺點分析
2. 最適合的聘用模式
3. 成本和風險考量
4. 具體實施建議`

// legalSchema validates category comparison replies.
const legalSchema = `{
  "type": "object",
  "required": ["summary", "key_differences", "scores"],
  "properties": {
    "summary": {"type": "string"},
    "key_differences": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["aspect", "differences"],
        "properties": {
          "aspect": {"type": "string"},
          "differences": {"type": "object", "additionalProperties": {"type": "string"}}
        }
      }
    },
    "scores": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 1, "maximum": 10}
    }
  }
}`
