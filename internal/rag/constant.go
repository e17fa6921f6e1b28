package rag

// Chunk metadata keys written by Ingest.
const (
	MetaSource      = "source"
	MetaTimestamp   = "timestamp"
	MetaDocType     = "doc_type"
	MetaChunkID     = "chunk_id"
	MetaTotalChunks = "total_chunks"
)

const (
	DefaultContextType = "general"
	DefaultTaskType    = "general"
	DefaultDocType     = "general"
)

// Prompt fragments
const (
	PromptPreamble     = "你是一位專業的跨國人力資源顧問。請根據以下資料回答問題，若資料不足請明確說明，不要編造內容。\n\n"
	PromptPrimaryLabel = "來源 %d（%s）：\n%s\n\n"
	PromptSecondary    = "補充來源 %d（%s）：\n%s\n\n"
	PromptGlobalHeader = "其他背景資訊：\n"
	PromptGlobalLine   = "- %s: %v\n"
	PromptQuestion     = "\n問題：%s\n請以繁體中文回答，並標註引用的來源編號。"
)

// Chunks suggested per complexity grade.
const (
	ChunksSimple   = 2
	ChunksModerate = 4
	ChunksComplex  = 6
	ChunksExpert   = 8
)

// Query analysis thresholds.
const (
	MinKeywordRunes      = 2
	ManyKeywords         = 5
	FewKeywords          = 3
	ComplexTopicCount    = 3
	BaseConfidence       = 0.7
	KeywordConfidence    = 0.02
	MaxKeywordConfidence = 0.2
	MaxConfidence        = 0.95
)

// Indicator patterns per complexity grade. \w is widened to any letter or digit.
var (
	ExpertIndicators = []string{
		`法規\s*解釋`, `判例\s*分析`, `訴訟\s*風險`,
		`制度\s*設計`, `體系\s*建立`, `全面\s*改革`,
		`深度\s*分析`, `全方位\s*評估`,
	}
	ComplexIndicators = []string{
		`綜合\s*(\w+)`, `整體\s*(\w+)\s*策略`, `(\w+)\s*風險\s*評估`, `(\w+)\s*合規性\s*檢查`,
		`法律\s*(\w+)\s*問題`, `勞資\s*(\w+)`, `糾紛\s*處理`,
		`長期\s*(\w+)`, `戰略\s*(\w+)`,
	}
	ModerateIndicators = []string{
		`處理\s*(\w+)\s*問題`, `(\w+)\s*注意事項`, `(\w+)\s*最佳實踐`, `如何制定\s*(\w+)`,
		`(\w+)\s*政策\s*(\w+)`, `(\w+)\s*和\s*(\w+)\s*區別`, `(\w+)\s*優缺點`,
	}
	SimpleIndicators = []string{
		`什麼是\s*(\w+)`, `(\w+)\s*是什麼`, `如何\s*(\w+)`,
		`(\w+)\s*天數`, `(\w+)\s*流程`, `(\w+)\s*規定`,
		`計算\s*(\w+)`, `(\w+)\s*多少`, `費用\s*(\w+)`,
	}
)

// Topic is an HR area recognised by any of its terms.
type Topic struct {
	Name  string
	Terms []string
}

// Topics in reporting order.
var Topics = []Topic{
	{"recruitment", []string{"招聘", "面試", "錄用", "人才", "選才"}},
	{"performance", []string{"績效", "考核", "評估", "KPI", "目標"}},
	{"compensation", []string{"薪資", "薪酬", "獎金", "福利", "津貼"}},
	{"leave", []string{"請假", "休假", "病假", "事假", "年假"}},
	{"labor_law", []string{"勞基法", "勞動法", "法規", "合規", "違法"}},
	{"discipline", []string{"懲戒", "處分", "違規", "警告", "解雇"}},
	{"training", []string{"培訓", "教育", "學習", "發展", "課程"}},
	{"employee_relations", []string{"員工關係", "溝通", "衝突", "協調", "調解"}},
	{"policy", []string{"政策", "制度", "規定", "辦法", "準則"}},
	{"compliance", []string{"合規", "稽核", "檢查", "監督", "風險"}},
}
