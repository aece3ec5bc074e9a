// Copyright (C) 2025 the conformo authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package aiprovider

import (
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

type providerCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Kind     string `json:"kind" validate:"omitempty,oneof=openai anthropic azure self_hosted"`
	APIKey   string `json:"apiKey" validate:"required,min=8"`
	Priority int    `json:"priority"`
	IsActive *bool  `json:"isActive"`
}

func (r providerCreateRequest) ToModel(tenantID uuid.UUID) models.AIProvider {
	provider := models.AIProvider{
		Name:     r.Name,
		Kind:     models.AIProviderKind(r.Kind),
		APIKey:   r.APIKey,
		Priority: r.Priority,
		IsActive: true,
	}
	provider.TenantID = tenantID
	if provider.Kind == "" {
		provider.Kind = models.AIProviderKindOpenAI
	}
	if r.IsActive != nil {
		provider.IsActive = *r.IsActive
	}
	return provider
}

type providerPatchRequest struct {
	Name     *string `json:"name"`
	Kind     *string `json:"kind" validate:"omitempty,oneof=openai anthropic azure self_hosted"`
	APIKey   *string `json:"apiKey" validate:"omitempty,min=8"`
	Priority *int    `json:"priority"`
	IsActive *bool   `json:"isActive"`
}

func (r providerPatchRequest) ApplyToModel(provider *models.AIProvider) bool {
	updated := false
	if r.Name != nil && *r.Name != provider.Name {
		updated = true
		provider.Name = *r.Name
	}
	if r.Kind != nil && models.AIProviderKind(*r.Kind) != provider.Kind {
		updated = true
		provider.Kind = models.AIProviderKind(*r.Kind)
	}
	if r.APIKey != nil && *r.APIKey != provider.APIKey {
		updated = true
		provider.APIKey = *r.APIKey
	}
	if r.Priority != nil && *r.Priority != provider.Priority {
		updated = true
		provider.Priority = *r.Priority
	}
	if r.IsActive != nil && *r.IsActive != provider.IsActive {
		updated = true
		provider.IsActive = *r.IsActive
	}
	return updated
}

type providerDTO struct {
	models.AIProvider
	ObfuscatedAPIKey string `json:"obfuscatedApiKey"`
}

// toDTO hides the stored credential. Only the first and last four characters
// survive, enough for an admin to recognize which key is configured.
func toDTO(provider models.AIProvider) providerDTO {
	obfuscated := ""
	if len(provider.APIKey) >= 8 {
		obfuscated = provider.APIKey[:4] + "************" + provider.APIKey[len(provider.APIKey)-4:]
	}
	return providerDTO{
		AIProvider:       provider,
		ObfuscatedAPIKey: obfuscated,
	}
}

type templateCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Prompt      string   `json:"prompt" validate:"required"`
	Temperature *float64 `json:"temperature" validate:"omitempty,min=0,max=2"`
}

func (r templateCreateRequest) ToModel(tenantID uuid.UUID) models.AIPromptTemplate {
	template := models.AIPromptTemplate{
		Name:        r.Name,
		Prompt:      r.Prompt,
		Temperature: 0.2,
	}
	template.TenantID = tenantID
	if r.Temperature != nil {
		template.Temperature = *r.Temperature
	}
	return template
}

type templatePatchRequest struct {
	Name        *string  `json:"name"`
	Prompt      *string  `json:"prompt"`
	Temperature *float64 `json:"temperature" validate:"omitempty,min=0,max=2"`
}

func (r templatePatchRequest) ApplyToModel(template *models.AIPromptTemplate) bool {
	updated := false
	if r.Name != nil && *r.Name != template.Name {
		updated = true
		template.Name = *r.Name
	}
	if r.Prompt != nil && *r.Prompt != template.Prompt {
		updated = true
		template.Prompt = *r.Prompt
	}
	if r.Temperature != nil && *r.Temperature != template.Temperature {
		updated = true
		template.Temperature = *r.Temperature
	}
	return updated
}
