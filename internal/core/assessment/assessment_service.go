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
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

type questionCounter interface {
	CountForFramework(tenantID uuid.UUID, framework string) (int64, error)
}

type responseReader interface {
	ListByAssessment(assessmentID uuid.UUID) ([]models.AssessmentResponse, error)
}

type scaleAverager interface {
	AverageScaleAnswer(assessmentID uuid.UUID) (float64, error)
}

// Progress is the computed answering state and maturity of one assessment.
type Progress struct {
	TotalQuestions int64   `json:"totalQuestions"`
	Answered       int64   `json:"answered"`
	Percent        int     `json:"percent"`
	MaturityScore  float64 `json:"maturityScore"`
	MaturityLevel  string  `json:"maturityLevel"`
}

type Service struct {
	questionRepository questionCounter
	responseRepository responseReader
	statsRepository    scaleAverager
}

func NewService(questionRepository questionCounter, responseRepository responseReader, statsRepository scaleAverager) *Service {
	return &Service{
		questionRepository: questionRepository,
		responseRepository: responseRepository,
		statsRepository:    statsRepository,
	}
}

// maturityLevel maps a 1-5 scale average onto the usual CMMI style names.
func maturityLevel(score float64) string {
	switch {
	case score <= 0:
		return "not_rated"
	case score < 1.5:
		return "initial"
	case score < 2.5:
		return "managed"
	case score < 3.5:
		return "defined"
	case score < 4.5:
		return "quantified"
	default:
		return "optimized"
	}
}

func (s *Service) ProgressOf(assessment models.Assessment) (Progress, error) {
	var progress Progress

	total, err := s.questionRepository.CountForFramework(assessment.TenantID, assessment.Framework)
	if err != nil {
		return progress, err
	}
	progress.TotalQuestions = total

	responses, err := s.responseRepository.ListByAssessment(assessment.ID)
	if err != nil {
		return progress, err
	}
	progress.Answered = int64(len(responses))

	if total > 0 {
		progress.Percent = int(progress.Answered * 100 / total)
		if progress.Percent > 100 {
			progress.Percent = 100
		}
	}

	score, err := s.statsRepository.AverageScaleAnswer(assessment.ID)
	if err != nil {
		return progress, err
	}
	progress.MaturityScore = score
	progress.MaturityLevel = maturityLevel(score)

	return progress, nil
}
