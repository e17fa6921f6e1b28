package assistant

const (
	// HistoryCap is the default number of turns kept per context type.
	HistoryCap = 10
	// PromptHistoryTurns is how many recent turns are quoted in the prompt.
	PromptHistoryTurns = 3

	DefaultContextType = "general"
)

const (
	PromptHeader   = "請基於以下完整上下文生成回應：\n\n檢索到的相關信息：\n%s\n\n"
	PromptHistory  = "歷史對話記錄：\n"
	PromptTurn     = "之前的問題：%s\n回答：%s\n"
	PromptTask     = "\n任務特定信息：\n"
	PromptTaskLine = "%s: %v\n"
	PromptFooter   = "\n當前問題：%s\n\n請生成一個專業、連貫且符合上下文的回答。確保回答準確反映檢索到的信息，並考慮歷史對話的連續性。"
)
