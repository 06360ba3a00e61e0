package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/internal/response"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/types"
	"github.com/breeew/aicare-api/pkg/utils"
)

func (s *HttpSrv) ImportMedQuAD(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.APIErrorDetail(c, errors.New("HttpSrv.ImportMedQuAD.FormFile", i18n.ERROR_INVALIDARGUMENT, err))
		return
	}

	f, err := file.Open()
	if err != nil {
		response.APIErrorDetail(c, errors.New("HttpSrv.ImportMedQuAD.Open", i18n.ERROR_INVALIDARGUMENT, err))
		return
	}
	defer f.Close()

	n, err := v1.NewKnowledgeLogic(c, s.Core).Import(f)
	if err != nil {
		response.APIErrorDetail(c, err)
		return
	}
	response.APISuccess(c, response.MessageResponse{
		Message: fmt.Sprintf("Successfully imported %d entries from %s", n, file.Filename),
	})
}

type QueryRequest struct {
	Query string `form:"query" binding:"required"`
	Limit int    `form:"limit"`
}

func (s *HttpSrv) Query(c *gin.Context) {
	var req QueryRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIErrorDetail(c, err)
		return
	}

	res, err := v1.NewQueryLogic(c, s.Core).Query(req.Query, req.Limit)
	if err != nil {
		response.APIErrorDetail(c, err)
		return
	}
	response.APISuccess(c, res)
}

type SearchQARequest struct {
	Query        string `form:"query" binding:"required"`
	QuestionType string `form:"question_type"`
}

type SearchQAResponse struct {
	Results []types.MedicalQA `json:"results"`
}

func (s *HttpSrv) SearchQA(c *gin.Context) {
	var req SearchQARequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIErrorDetail(c, err)
		return
	}

	list, err := v1.NewKnowledgeLogic(c, s.Core).Search(req.Query, req.QuestionType)
	if err != nil {
		response.APIErrorDetail(c, err)
		return
	}
	response.APISuccess(c, SearchQAResponse{Results: list})
}
