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

// Package assessment implements maturity assessments: domains and controls
// per framework, question catalogs with typed answers and the per assessment
// progress rollup.
package assessment

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	Domains     *crud.Controller[models.AssessmentDomain, domainCreateRequest, domainPatchRequest]
	Controls    *crud.Controller[models.AssessmentControl, controlCreateRequest, controlPatchRequest]
	Assessments *crud.Controller[models.Assessment, assessmentCreateRequest, assessmentPatchRequest]
	Questions   *crud.Controller[models.AssessmentQuestion, questionCreateRequest, questionPatchRequest]

	assessmentRepository *repositories.AssessmentRepository
	questionRepository   *repositories.AssessmentQuestionRepository
	responseRepository   *repositories.AssessmentResponseRepository
	service              *Service
}

func NewHTTPController(db core.DB, statsRepository *repositories.StatisticsRepository) *HTTPController {
	assessmentRepository := repositories.NewAssessmentRepository(db)
	questionRepository := repositories.NewAssessmentQuestionRepository(db)
	responseRepository := repositories.NewAssessmentResponseRepository(db)

	return &HTTPController{
		Domains: crud.NewController[models.AssessmentDomain, domainCreateRequest, domainPatchRequest](
			repositories.NewTenantScopedRepository[models.AssessmentDomain](db, "framework ASC, name ASC", "framework", "name"), "domainID"),
		Controls: crud.NewController[models.AssessmentControl, controlCreateRequest, controlPatchRequest](
			repositories.NewTenantScopedRepository[models.AssessmentControl](db, "code ASC", "code", "name"), "controlID"),
		Assessments: crud.NewController[models.Assessment, assessmentCreateRequest, assessmentPatchRequest](
			assessmentRepository.TenantScopedRepository, "assessmentID"),
		Questions: crud.NewController[models.AssessmentQuestion, questionCreateRequest, questionPatchRequest](
			questionRepository.TenantScopedRepository, "questionID"),
		assessmentRepository: assessmentRepository,
		questionRepository:   questionRepository,
		responseRepository:   responseRepository,
		service:              NewService(questionRepository, responseRepository, statsRepository),
	}
}

// Answer validates and upserts a single response. Answering the same question
// again replaces the stored answer.
func (ctl *HTTPController) Answer(c core.Context) error {
	assessmentID, err := core.GetUUIDParam(c, "assessmentID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)

	if _, err := ctl.assessmentRepository.ReadByTenant(tenant.GetID(), assessmentID); err != nil {
		return echo.NewHTTPError(404, "assessment not found").WithInternal(err)
	}

	question, err := ctl.questionRepository.ReadByTenant(tenant.GetID(), req.QuestionID)
	if err != nil {
		return echo.NewHTTPError(404, "question not found").WithInternal(err)
	}

	answer, err := ValidateAnswer(question, req.Answer)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	response := models.AssessmentResponse{
		TenantModel:  models.TenantModel{TenantID: tenant.GetID()},
		AssessmentID: assessmentID,
		QuestionID:   question.ID,
		Answer:       answer,
		AnsweredBy:   core.GetSession(c).GetUserID(),
	}

	if err := ctl.responseRepository.UpsertResponse(nil, &response); err != nil {
		return echo.NewHTTPError(500, "could not store answer").WithInternal(err)
	}

	return c.JSON(200, response)
}

func (ctl *HTTPController) ListResponses(c core.Context) error {
	assessmentID, err := core.GetUUIDParam(c, "assessmentID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	if _, err := ctl.assessmentRepository.ReadByTenant(tenant.GetID(), assessmentID); err != nil {
		return echo.NewHTTPError(404, "assessment not found").WithInternal(err)
	}

	responses, err := ctl.responseRepository.ListByAssessment(assessmentID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list responses").WithInternal(err)
	}

	return c.JSON(200, responses)
}

// Progress reports answered counts and the scale maturity for one assessment.
func (ctl *HTTPController) Progress(c core.Context) error {
	assessmentID, err := core.GetUUIDParam(c, "assessmentID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	assessment, err := ctl.assessmentRepository.ReadByTenant(tenant.GetID(), assessmentID)
	if err != nil {
		return echo.NewHTTPError(404, "assessment not found").WithInternal(err)
	}

	progress, err := ctl.service.ProgressOf(assessment)
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate progress").WithInternal(err)
	}

	return c.JSON(200, progress)
}
