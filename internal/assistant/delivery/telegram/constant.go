package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdReset = "/reset"

	// contextTypeFormat maps a chat onto its own conversation history.
	contextTypeFormat = "telegram_%d"
	taskType          = "general"
)

const (
	msgStart = "👋 歡迎使用跨國人力資源助理！\n\n您可以直接詢問各國勞動法規、稅務、社會保險與聘用成本相關問題，我會根據知識庫內容回答並標註來源。\n\n輸入 /help 查看使用說明。"
	msgHelp  = "使用說明：\n\n• 直接輸入問題，例如「台灣與日本的特休規定有何不同？」\n• /reset 清除本對話的歷史紀錄\n• /help 顯示此說明"
	msgReset = "已清除本對話的歷史紀錄。"
	msgError = "處理您的問題時發生錯誤，請稍後再試。"
)
