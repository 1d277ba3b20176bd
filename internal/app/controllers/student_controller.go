package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentmanagement/internal/app/models/dto"
	"github.com/yigit/studentmanagement/internal/app/services"
	"github.com/yigit/studentmanagement/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterOrUpdate registers a new student or updates the existing one
// @Summary Register or update a student
// @Description Creates the student identified by the path identifier, or replaces the fields of the existing one
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student identifier" example(123456789)
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student registered/updated successfully."
// @Failure 400 {object} dto.APIResponse "Invalid request data or conflicting student"
// @Router /student/{id} [post]
func (c *StudentController) RegisterOrUpdate(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.RegisterOrUpdate(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student registered/updated successfully."))
}

// GetByID retrieves a student by identifier
// @Summary Get student details
// @Description Retrieves a student by its identifier
// @Tags students
// @Produce json
// @Param id path string true "Student identifier" example(123456789)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully."
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /student/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student retrieved successfully."))
}

// ListAll retrieves all students
// @Summary Get all students
// @Description Retrieves every registered student
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully."
// @Failure 400 {object} dto.APIResponse "Storage failure"
// @Router /student [get]
func (c *StudentController) ListAll(ctx *gin.Context) {
	students, err := c.studentService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, "Students retrieved successfully."))
}
