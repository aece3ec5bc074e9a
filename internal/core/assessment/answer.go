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

package assessment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// Answer is the tagged union stored in the response row. The kind must match
// the question's declared answer kind, the value shape depends on the kind:
// scale 1-5, bool, one of the question options, free text, a number or an
// ISO date.
type Answer struct {
	Kind  models.AnswerKind `json:"kind"`
	Value json.RawMessage   `json:"value"`
}

const (
	scaleMin = 1
	scaleMax = 5
)

// ValidateAnswer checks an answer against its question and returns the
// canonical serialized form.
func ValidateAnswer(question models.AssessmentQuestion, answer Answer) (datatypes.JSON, error) {
	if answer.Kind != question.Kind {
		return nil, fmt.Errorf("answer kind %q does not match question kind %q", answer.Kind, question.Kind)
	}

	switch answer.Kind {
	case models.AnswerKindScale:
		var value int
		if err := json.Unmarshal(answer.Value, &value); err != nil {
			return nil, errors.Wrap(err, "scale answer must be an integer")
		}
		if value < scaleMin || value > scaleMax {
			return nil, fmt.Errorf("scale answer must be between %d and %d", scaleMin, scaleMax)
		}

	case models.AnswerKindBool:
		var value bool
		if err := json.Unmarshal(answer.Value, &value); err != nil {
			return nil, errors.Wrap(err, "bool answer must be true or false")
		}

	case models.AnswerKindMultipleChoice:
		var value string
		if err := json.Unmarshal(answer.Value, &value); err != nil {
			return nil, errors.Wrap(err, "multiple choice answer must be a string")
		}

		var options []string
		if err := json.Unmarshal(question.Options, &options); err != nil {
			return nil, errors.Wrap(err, "question has no valid options")
		}

		found := false
		for _, option := range options {
			if option == value {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%q is not one of the question options", value)
		}

	case models.AnswerKindText:
		var value string
		if err := json.Unmarshal(answer.Value, &value); err != nil {
			return nil, errors.Wrap(err, "text answer must be a string")
		}
		if value == "" {
			return nil, errors.New("text answer must not be empty")
		}

	case models.AnswerKindNumeric:
		var value float64
		if err := json.Unmarshal(answer.Value, &value); err != nil {
			return nil, errors.Wrap(err, "numeric answer must be a number")
		}

	case models.AnswerKindDate:
		var value string
		if err := json.Unmarshal(answer.Value, &value); err != nil {
			return nil, errors.Wrap(err, "date answer must be a string")
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			if _, err := time.Parse(time.RFC3339, value); err != nil {
				return nil, errors.Wrap(err, "date answer must be an ISO date")
			}
		}

	default:
		return nil, fmt.Errorf("unknown answer kind %q", answer.Kind)
	}

	serialized, err := json.Marshal(answer)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(serialized), nil
}
