package usecase

const selectModelsPrompt = `基於以下資訊，為每個國家選擇最佳聘用模式：

公司需求：
%s

國家比較：
%s

可用聘用模式：
%s

請只回覆以下格式的 JSON：
{"國家代碼": {"model": "模式名稱", "reason": "選擇理由"}}`

const estimateCostsPrompt = `基於以下資訊，估算每個國家的年度聘用成本（美元），需考慮薪資、稅務、保險、合規與其他相關成本：

公司需求：
%s

推薦聘用模式：
%s

請只回覆以下格式的 JSON：
{"國家代碼": 估算成本}`

const assessRisksPrompt = `基於以下資訊，評估每個國家的聘用風險（法規、稅務、勞資關係、政治等）：

推薦聘用模式：
%s

國家比較：
%s

嚴重程度與可能性皆為 1 到 5。請只回覆以下格式的 JSON：
{"國家代碼": [{"type": "風險類型", "description": "風險描述", "severity": 3, "likelihood": 3, "mitigation": "緩解策略"}]}`

const implementationPrompt = `基於以下資訊，生成跨國聘用策略的實施步驟，涵蓋準備、實施與監控階段：

公司需求：
%s

目標國家：
%s

推薦聘用模式：
%s

請只回覆以下格式的 JSON 陣列：
[{"name": "步驟名稱", "description": "步驟描述", "phase": "準備/實施/監控", "timeline": "預計時間", "resources": ["資源"], "considerations": ["考量"]}]`
