package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/concresys/concresys/internal/models"
)

// Placeholder responses. Analysis never surfaces an error to the caller:
// every failure path degrades to a user-visible message.
const (
	msgNoAPIKey     = "API Key not configured."
	msgEmptyAnswer  = "Não foi possível gerar a análise."
	msgCallFailed   = "Erro ao conectar com a inteligência artificial. Verifique sua conexão ou chave de API."
	maxContextPours = 50
)

const analysisPrompt = `
Atue como um engenheiro civil sênior especialista em controle de custos e produção.
Analise os seguintes dados de concretagem da obra (em formato JSON).

Dados:
%s

Por favor, forneça um relatório conciso em português (Markdown) abordando:
1. **Análise de Volume:** Identifique locais com maior consumo de concreto e padrões diários.
2. **Desempenho de Fornecedores:** Baseado nos comentários (notes) e avaliações (ratings), indique fornecedores com problemas.
3. **Logística:** Comente sobre horários ou consistência dos lançamentos (se houver dados suficientes).
4. **Recomendações:** Sugira 3 ações para melhorar o controle logístico ou negociação de insumos.

Seja direto e use bullet points.
`

// analysisContext is the structured payload handed to the model: the
// most recent pours plus the full reference registries.
type analysisContext struct {
	Pours         []models.PourRecord   `json:"pours"`
	Suppliers     []models.Supplier     `json:"suppliers"`
	Locations     []models.Location     `json:"locations"`
	ConcreteTypes []models.ConcreteType `json:"concreteTypes"`
}

// BuildAnalysisPrompt serializes the data context into the instruction
// template. Pours are capped at the 50 most recent to keep the context
// window bounded.
func BuildAnalysisPrompt(pours []models.PourRecord, suppliers []models.Supplier, locations []models.Location, concreteTypes []models.ConcreteType) string {
	if len(pours) > maxContextPours {
		pours = pours[:maxContextPours]
	}
	data, err := json.Marshal(analysisContext{
		Pours:         pours,
		Suppliers:     suppliers,
		Locations:     locations,
		ConcreteTypes: concreteTypes,
	})
	if err != nil {
		data = []byte("{}")
	}
	return fmt.Sprintf(analysisPrompt, data)
}

// AnalyzePourData produces the narrative report for the recorded data.
// A nil client (no API key), a failed call or an empty answer all return
// a placeholder string instead of an error.
func AnalyzePourData(ctx context.Context, c *Client, pours []models.PourRecord, suppliers []models.Supplier, locations []models.Location, concreteTypes []models.ConcreteType) string {
	if c == nil {
		return msgNoAPIKey
	}

	prompt := BuildAnalysisPrompt(pours, suppliers, locations, concreteTypes)
	text, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("ai: analysis failed: %v", err)
		return msgCallFailed
	}
	if text == "" {
		return msgEmptyAnswer
	}
	return text
}
