package models

type AIProviderKind string

const (
	AIProviderKindOpenAI     AIProviderKind = "openai"
	AIProviderKindAnthropic  AIProviderKind = "anthropic"
	AIProviderKindAzure      AIProviderKind = "azure"
	AIProviderKindSelfHosted AIProviderKind = "self_hosted"
)

type AIProvider struct {
	TenantModel
	Name      string         `json:"name" gorm:"type:text;not null"`
	Kind      AIProviderKind `json:"kind" gorm:"type:text;default:'openai'"`
	APIKey    string         `json:"-" gorm:"column:api_key;type:text"`
	Priority  int            `json:"priority"`
	IsActive  bool           `json:"isActive" gorm:"default:true"`
	IsPrimary bool           `json:"isPrimary" gorm:"default:false"`
}

func (m AIProvider) TableName() string {
	return "ai_grc_providers"
}

type AIPromptTemplate struct {
	TenantModel
	Name        string  `json:"name" gorm:"type:text;not null"`
	Prompt      string  `json:"prompt" gorm:"type:text;not null"`
	Temperature float64 `json:"temperature" gorm:"default:0.2"`
}

func (m AIPromptTemplate) TableName() string {
	return "ai_grc_prompt_templates"
}
