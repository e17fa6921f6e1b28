package strategy

import (
	"time"

	"hr-assistant/internal/model"
)

const (
	DefaultCacheTTL = 7 * 24 * time.Hour

	// FallbackEmploymentModel is recommended when no employment model applies.
	FallbackEmploymentModel = "直接聘用"
	// FallbackCost is the annual cost estimate, in USD, used when estimation degrades.
	FallbackCost = 50000.0
)

// FallbackRisks returns the generic risk list used when assessment degrades.
func FallbackRisks() []model.Risk {
	return []model.Risk{
		{Type: "法規風險", Description: "可能存在法規合規問題", Severity: 3, Likelihood: 3, Mitigation: "諮詢當地法律專家"},
		{Type: "稅務風險", Description: "可能存在稅務合規問題", Severity: 3, Likelihood: 3, Mitigation: "諮詢當地稅務專家"},
	}
}

// FallbackSteps returns the generic rollout used when step generation degrades.
func FallbackSteps() []model.ImplementationStep {
	return []model.ImplementationStep{
		{
			Name: "法律諮詢", Description: "諮詢各目標國家的法律專家", Phase: "準備", Timeline: "1-2週",
			Resources: []string{"法律顧問", "HR團隊"}, Considerations: []string{"確保了解所有法規要求"},
		},
		{
			Name: "制定聘用合同", Description: "根據各國法規制定聘用合同", Phase: "準備", Timeline: "2-3週",
			Resources: []string{"法律顧問", "HR團隊"}, Considerations: []string{"確保合同符合當地法規"},
		},
		{
			Name: "實施聘用", Description: "開始聘用流程", Phase: "實施", Timeline: "1-3個月",
			Resources: []string{"HR團隊", "招聘團隊"}, Considerations: []string{"遵循當地勞動法規"},
		},
		{
			Name: "合規監控", Description: "持續監控合規情況", Phase: "監控", Timeline: "持續",
			Resources: []string{"HR團隊", "法律顧問"}, Considerations: []string{"定期審查法規變更"},
		},
	}
}
