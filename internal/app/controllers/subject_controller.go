package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentmanagement/internal/app/models/dto"
	"github.com/yigit/studentmanagement/internal/app/services"
	"github.com/yigit/studentmanagement/internal/middleware"
)

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// ListByStudentCode lists the subjects of a student
// @Summary List subjects by student code
// @Description Resolves the student by business code and returns its subjects
// @Tags subjects
// @Produce json
// @Param studentCode path string true "Student code" example(STU001)
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectResponse} "Subjects retrieved successfully."
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /subject/byStudentCode/{studentCode} [get]
func (c *SubjectController) ListByStudentCode(ctx *gin.Context) {
	subjects, err := c.subjectService.ListByStudentCode(ctx.Request.Context(), ctx.Param("studentCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects, "Subjects retrieved successfully."))
}

// AddSubject adds a subject to a student
// @Summary Add a subject
// @Description Creates a subject owned by the student with the path identifier
// @Tags subjects
// @Accept json
// @Produce json
// @Param studentId path string true "Student identifier" example(123456789)
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectResponse} "Subject added successfully."
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /subject/add/{studentId} [post]
func (c *SubjectController) AddSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.AddSubject(ctx.Request.Context(), &req, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject, "Subject added successfully."))
}
