package pagespeed

type psiResponse struct {
	Error            *psiError         `json:"error"`
	LighthouseResult *lighthouseResult `json:"lighthouseResult"`
}

type psiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lighthouseResult struct {
	Categories lighthouseCategories `json:"categories"`
	Audits     map[string]psiAudit  `json:"audits"`
}

type lighthouseCategories struct {
	Performance psiCategory `json:"performance"`
}

type psiCategory struct {
	Score float64 `json:"score"`
}

type psiAudit struct {
	DisplayValue string `json:"displayValue"`
}
