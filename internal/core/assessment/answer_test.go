package assessment

import (
	"encoding/json"
	"testing"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestValidateAnswer(t *testing.T) {
	t.Run("rejects a kind mismatch", func(t *testing.T) {
		question := models.AssessmentQuestion{Kind: models.AnswerKindScale}
		_, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindBool, Value: json.RawMessage(`true`)})
		assert.Error(t, err)
	})

	t.Run("scale answers must sit between one and five", func(t *testing.T) {
		question := models.AssessmentQuestion{Kind: models.AnswerKindScale}

		_, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindScale, Value: json.RawMessage(`3`)})
		assert.NoError(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindScale, Value: json.RawMessage(`0`)})
		assert.Error(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindScale, Value: json.RawMessage(`6`)})
		assert.Error(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindScale, Value: json.RawMessage(`"three"`)})
		assert.Error(t, err)
	})

	t.Run("bool answers must be booleans", func(t *testing.T) {
		question := models.AssessmentQuestion{Kind: models.AnswerKindBool}

		_, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindBool, Value: json.RawMessage(`false`)})
		assert.NoError(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindBool, Value: json.RawMessage(`"yes"`)})
		assert.Error(t, err)
	})

	t.Run("multiple choice answers must be one of the options", func(t *testing.T) {
		question := models.AssessmentQuestion{
			Kind:    models.AnswerKindMultipleChoice,
			Options: datatypes.JSON(`["yearly","quarterly","never"]`),
		}

		_, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindMultipleChoice, Value: json.RawMessage(`"quarterly"`)})
		assert.NoError(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindMultipleChoice, Value: json.RawMessage(`"weekly"`)})
		assert.Error(t, err)
	})

	t.Run("multiple choice without options is rejected", func(t *testing.T) {
		question := models.AssessmentQuestion{Kind: models.AnswerKindMultipleChoice}
		_, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindMultipleChoice, Value: json.RawMessage(`"anything"`)})
		assert.Error(t, err)
	})

	t.Run("text answers must not be empty", func(t *testing.T) {
		question := models.AssessmentQuestion{Kind: models.AnswerKindText}

		_, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindText, Value: json.RawMessage(`"we rotate keys monthly"`)})
		assert.NoError(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindText, Value: json.RawMessage(`""`)})
		assert.Error(t, err)
	})

	t.Run("date answers accept ISO dates and RFC3339 timestamps", func(t *testing.T) {
		question := models.AssessmentQuestion{Kind: models.AnswerKindDate}

		_, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindDate, Value: json.RawMessage(`"2025-06-30"`)})
		assert.NoError(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindDate, Value: json.RawMessage(`"2025-06-30T10:00:00Z"`)})
		assert.NoError(t, err)

		_, err = ValidateAnswer(question, Answer{Kind: models.AnswerKindDate, Value: json.RawMessage(`"30/06/2025"`)})
		assert.Error(t, err)
	})

	t.Run("the canonical form round trips", func(t *testing.T) {
		question := models.AssessmentQuestion{Kind: models.AnswerKindNumeric}

		serialized, err := ValidateAnswer(question, Answer{Kind: models.AnswerKindNumeric, Value: json.RawMessage(`42.5`)})
		require.NoError(t, err)

		var answer Answer
		require.NoError(t, json.Unmarshal(serialized, &answer))
		assert.Equal(t, models.AnswerKindNumeric, answer.Kind)
		assert.JSONEq(t, `42.5`, string(answer.Value))
	})
}
